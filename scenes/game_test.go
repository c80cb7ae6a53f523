package scenes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/kallis-world/assets"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/systems"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type recorder struct {
	requests []State
}

func (r *recorder) Request(next State) {
	r.requests = append(r.requests, next)
}

type mapLoader map[int]*assets.TileMap

func (l mapLoader) LoadLevel(index int) (*assets.TileMap, error) {
	if m, ok := l[index]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %d", assets.ErrLevelNotFound, index)
}

func groundMap() *assets.TileMap {
	m := &assets.TileMap{
		Name:     "ground",
		Width:    10,
		Height:   12,
		TileSize: 64,
		Layers:   map[string][]assets.Tile{},
	}
	for col := 0; col < m.Width; col++ {
		m.Layers[cfg.Level.PlatformsLayer] = append(m.Layers[cfg.Level.PlatformsLayer], assets.Tile{
			Col: col, Row: 11, X: float64(col) * 64, Size: 64, Color: cfg.Brown,
		})
	}
	return m
}

func TestGameSceneEnterStartsFreshGame(t *testing.T) {
	rec := &recorder{}
	gs := NewGameScene(rec, &Session{}, mapLoader{1: groundMap()})

	if err := gs.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	level := systems.GetLevel(gs.ecs)
	level.Score = 11
	first := gs.ecs

	gs.Exit()
	if err := gs.Enter(); err != nil {
		t.Fatalf("second Enter: %v", err)
	}
	if gs.ecs == first {
		t.Error("re-entering reused the previous world")
	}
	if got := systems.GetLevel(gs.ecs).Score; got != 0 {
		t.Errorf("Score = %d on a new game, want 0", got)
	}
	if got := donburi.NewQuery(filter.Contains(tags.Player)).Count(gs.ecs.World); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
}

func TestGameSceneHandsScoreToGameOver(t *testing.T) {
	rec := &recorder{}
	session := &Session{}
	gs := NewGameScene(rec, session, mapLoader{1: groundMap()})
	if err := gs.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}

	if err := gs.afterFrame(); err != nil || len(rec.requests) != 0 {
		t.Fatalf("afterFrame = %v with requests %v, want nothing", err, rec.requests)
	}

	level := systems.GetLevel(gs.ecs)
	level.Score = 6
	level.GameOverRequested = true

	if err := gs.afterFrame(); err != nil {
		t.Fatalf("afterFrame: %v", err)
	}
	if len(rec.requests) != 1 || rec.requests[0] != StateGameOver {
		t.Errorf("requests = %v, want [game over]", rec.requests)
	}
	if session.LastScore != 6 || session.LastLevel != 1 {
		t.Errorf("session = %+v, want score 6 on level 1", session)
	}
}

func TestGameSceneReportsMissingLevel(t *testing.T) {
	start := cfg.Debug.StartLevel
	t.Cleanup(func() { cfg.Debug.StartLevel = start })
	cfg.Debug.StartLevel = 4

	gs := NewGameScene(&recorder{}, &Session{}, mapLoader{1: groundMap()})
	if err := gs.Enter(); !errors.Is(err, assets.ErrLevelNotFound) {
		t.Errorf("Enter error = %v, want ErrLevelNotFound", err)
	}
}

func TestGameSceneSurfacesUpdateError(t *testing.T) {
	rec := &recorder{}
	gs := NewGameScene(rec, &Session{}, mapLoader{1: groundMap()})
	if err := gs.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}

	boom := errors.New("level 2 missing")
	gs.err = boom
	if err := gs.afterFrame(); !errors.Is(err, boom) {
		t.Errorf("afterFrame error = %v, want %v", err, boom)
	}
}
