package ui

import "testing"

func TestScoreLine(t *testing.T) {
	tests := []struct {
		score, best int
		want        string
	}{
		{score: 0, best: 0, want: "Score: 0  Best: 0"},
		{score: 5, best: 12, want: "Score: 5  Best: 12"},
		{score: 12, best: 12, want: "Score: 12  (new best!)"},
	}

	for _, tt := range tests {
		if got := ScoreLine(tt.score, tt.best); got != tt.want {
			t.Errorf("ScoreLine(%d, %d) = %q, want %q", tt.score, tt.best, got, tt.want)
		}
	}
}
