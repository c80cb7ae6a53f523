package scenes

import "testing"

func TestGameOverRestartWaitsForFade(t *testing.T) {
	tests := []struct {
		name    string
		opacity float32
		want    int
	}{
		{name: "fading in", opacity: 0, want: 0},
		{name: "almost visible", opacity: 0.99, want: 0},
		{name: "fully visible", opacity: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			gs := NewGameOverScene(rec, &Session{})
			gs.opacity = tt.opacity

			gs.requestRestart()

			if len(rec.requests) != tt.want {
				t.Fatalf("requests = %v, want %d", rec.requests, tt.want)
			}
			if tt.want == 1 && rec.requests[0] != StateGame {
				t.Errorf("requested %v, want %v", rec.requests[0], StateGame)
			}
		})
	}
}
