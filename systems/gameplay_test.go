package systems

import (
	"errors"
	"testing"

	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi/ecs"
)

// standOn puts the player on the ground with its centre at x.
func standOn(t *testing.T, e *ecs.ECS, x float64) {
	t.Helper()
	obj, _ := playerBody(t, e)
	engine.SetCenter(obj, x, tileSize+cfg.Player.Height/2)
	obj.Update()
}

func TestProjectileRemovesEveryOverlappedMeteor(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	level := GetLevel(e)
	level.Score = 3

	p := factory.CreateProjectile(e, 500, 500, 600, 500)
	for _, x := range []float64{505, 510, 515} {
		factory.CreateMeteor(e, x, 500)
	}
	far := factory.CreateMeteor(e, 800, 500)

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if level.Score != 3+3*cfg.Meteor.Points {
		t.Errorf("Score = %d, want %d", level.Score, 3+3*cfg.Meteor.Points)
	}
	if p.Valid() {
		t.Error("projectile survived a hit")
	}
	if got := count(e, tags.Meteor); got != 1 {
		t.Errorf("meteors = %d, want 1", got)
	}
	if !far.Valid() {
		t.Error("meteor out of reach was removed")
	}
}

func TestMeteorScoresOnceForTwoProjectiles(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})

	factory.CreateProjectile(e, 500, 500, 600, 500)
	factory.CreateProjectile(e, 500, 502, 600, 502)
	factory.CreateMeteor(e, 505, 500)

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if got := GetLevel(e).Score; got != cfg.Meteor.Points {
		t.Errorf("Score = %d, want %d", got, cfg.Meteor.Points)
	}
	// The second projectile found nothing left to hit.
	if got := count(e, tags.Projectile); got != 1 {
		t.Errorf("projectiles = %d, want 1", got)
	}
}

func TestProjectileMissPersists(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})

	p := factory.CreateProjectile(e, 500, 400, 600, 400)
	for i := 0; i < 10; i++ {
		if err := UpdateGameplay(e); err != nil {
			t.Fatalf("UpdateGameplay: %v", err)
		}
	}

	if !p.Valid() {
		t.Fatal("projectile removed without a hit or leaving the play area")
	}
	if x, _ := engine.Center(components.Object.Get(p).Object); x != 550 {
		t.Errorf("projectile x = %v, want 550", x)
	}
}

func TestProjectileBoundsUseWidthOnBothAxes(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	half := cfg.Projectile.Height / 2

	tests := []struct {
		name   string
		x, y   float64
		remove bool
	}{
		// Above the screen height but below the width: kept.
		{name: "above screen height", x: 500, y: float64(cfg.C.Height) + 100, remove: false},
		{name: "bottom past width", x: 500, y: float64(cfg.C.Width) + half + 1, remove: true},
		{name: "top below zero", x: 500, y: -half - 1, remove: true},
		{name: "right below zero", x: -cfg.Projectile.Width, y: 400, remove: true},
		{name: "left past width", x: float64(cfg.C.Width) + cfg.Projectile.Width, y: 400, remove: true},
		{name: "inside", x: 500, y: 400, remove: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Stationary so the first step leaves it where it was put.
			p := factory.CreateProjectile(e, tt.x, tt.y, tt.x+1, tt.y)
			vel := components.Physics.Get(p)
			vel.ChangeX, vel.ChangeY = 0, 0

			if err := UpdateGameplay(e); err != nil {
				t.Fatalf("UpdateGameplay: %v", err)
			}
			if removed := !p.Valid(); removed != tt.remove {
				t.Errorf("removed = %t, want %t", removed, tt.remove)
			}
			if p.Valid() {
				factory.Destroy(e, p)
			}
		})
	}
}

func TestFallRespawnKeepsVelocity(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	obj, vel := playerBody(t, e)

	engine.SetCenter(obj, 400, -150)
	obj.Update()
	vel.ChangeX, vel.ChangeY = 3, -10

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if x, y := engine.Center(obj); x != cfg.Player.StartX || y != cfg.Player.StartY {
		t.Errorf("centre = (%v, %v), want start", x, y)
	}
	if vel.ChangeX != 3 || vel.ChangeY != -11 {
		t.Errorf("velocity = (%v, %v), want (3, -11)", vel.ChangeX, vel.ChangeY)
	}
	if GetLevel(e).GameOverRequested {
		t.Error("falling off requested game over")
	}
	if got := pendingSounds(e, cfg.SoundGameOver); got != 1 {
		t.Errorf("failure cues = %d, want 1", got)
	}
}

func TestHazardRespawnsAndRequestsGameOverOnce(t *testing.T) {
	quietLevels(t)
	m := flatMap(20)
	m.Layers[cfg.Level.HazardLayer] = []assets.Tile{tileAt(5, 1)}
	m.Layers[cfg.Level.CoinsLayer] = []assets.Tile{tileAt(5, 1)}
	e := newTestWorld(t, fakeLoader{1: m})
	level := GetLevel(e)
	level.Score = 5
	obj, vel := playerBody(t, e)

	for i := 0; i < 2; i++ {
		standOn(t, e, 5*tileSize+tileSize/2)
		vel.ChangeX = cfg.Player.MovementSpeed

		if err := UpdateGameplay(e); err != nil {
			t.Fatalf("UpdateGameplay: %v", err)
		}

		if x, y := engine.Center(obj); x != cfg.Player.StartX || y != cfg.Player.StartY {
			t.Errorf("centre = (%v, %v), want start", x, y)
		}
		if vel.ChangeX != 0 || vel.ChangeY != 0 {
			t.Errorf("velocity = (%v, %v), want zero", vel.ChangeX, vel.ChangeY)
		}
	}

	if !level.GameOverRequested {
		t.Error("GameOverRequested not set")
	}
	if got := pendingSounds(e, cfg.SoundGameOver); got != 1 {
		t.Errorf("failure cues = %d, want 1", got)
	}
	// The coin under the hazard is out of reach once the player respawns.
	if level.Score != 5 {
		t.Errorf("Score = %d, want 5", level.Score)
	}
	if got := count(e, tags.Coin); got != 1 {
		t.Errorf("coins = %d, want 1", got)
	}
}

func TestPlayerCollectsEveryOverlappedCoin(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	standOn(t, e, 300)

	y := tileSize + cfg.Player.Height/2
	for _, dx := range []float64{-10, 0, 10} {
		factory.CreateCoin(e, 300+dx, y)
	}
	far := factory.CreateCoin(e, 900, y)

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if got := GetLevel(e).Score; got != 3 {
		t.Errorf("Score = %d, want 3", got)
	}
	if got := count(e, tags.Coin); got != 1 || !far.Valid() {
		t.Errorf("coins = %d, want only the far coin left", got)
	}
	if got := pendingSounds(e, cfg.SoundCoin); got != 3 {
		t.Errorf("coin cues = %d, want 3", got)
	}
}

func TestReachingEndOfMapAdvancesLevel(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20), 2: flatMap(30)})
	level := GetLevel(e)
	level.Score = 7

	standOn(t, e, level.EndOfMap-5)
	_, vel := playerBody(t, e)
	vel.ChangeX = cfg.Player.MovementSpeed

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if level.Index != 2 {
		t.Errorf("Index = %d, want 2", level.Index)
	}
	if level.Score != 7 {
		t.Errorf("Score = %d, want 7", level.Score)
	}
	if level.EndOfMap != 30*tileSize {
		t.Errorf("EndOfMap = %v, want %v", level.EndOfMap, 30*tileSize)
	}
	obj, _ := playerBody(t, e)
	if x, _ := engine.Center(obj); x != cfg.Player.StartX {
		t.Errorf("player x = %v, want start %v", x, cfg.Player.StartX)
	}
	if camX, camY := CameraPosition(e); camX != 0 || camY != 0 {
		t.Errorf("camera = (%v, %v), want origin after advancing", camX, camY)
	}
}

// countingLoader records every level index asked for.
type countingLoader struct {
	fakeLoader
	requested []int
}

func (c *countingLoader) LoadLevel(index int) (*assets.TileMap, error) {
	c.requested = append(c.requested, index)
	return c.fakeLoader.LoadLevel(index)
}

func TestHazardAtEndOfMapDoesNotAdvance(t *testing.T) {
	quietLevels(t)
	m := flatMap(20)
	m.Layers[cfg.Level.HazardLayer] = []assets.Tile{tileAt(19, 1)}
	loader := &countingLoader{fakeLoader: fakeLoader{1: m, 2: flatMap(30)}}
	e := newTestWorld(t, loader)
	level := GetLevel(e)
	level.Score = 4

	standOn(t, e, level.EndOfMap)

	if err := UpdateGameplay(e); err != nil {
		t.Fatalf("UpdateGameplay: %v", err)
	}

	if level.Index != 1 {
		t.Errorf("Index = %d, want 1", level.Index)
	}
	if !level.GameOverRequested {
		t.Error("GameOverRequested not set")
	}
	if level.Score != 4 {
		t.Errorf("Score = %d, want 4", level.Score)
	}
	for _, idx := range loader.requested {
		if idx != 1 {
			t.Errorf("loader asked for level %d, want only level 1", idx)
		}
	}
	obj, _ := playerBody(t, e)
	if x, _ := engine.Center(obj); x != cfg.Player.StartX {
		t.Errorf("player x = %v, want start %v", x, cfg.Player.StartX)
	}
}

func TestReachingEndOfLastMapFails(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	level := GetLevel(e)

	standOn(t, e, level.EndOfMap)

	err := UpdateGameplay(e)
	if !errors.Is(err, assets.ErrLevelNotFound) {
		t.Fatalf("UpdateGameplay error = %v, want ErrLevelNotFound", err)
	}
	if level.Index != 1 {
		t.Errorf("Index = %d, want 1", level.Index)
	}
}

func TestScoreNeverDecreasesDuringPlay(t *testing.T) {
	e := newTestWorld(t, fakeLoader{1: flatMap(40), 2: flatMap(40)})
	level := GetLevel(e)
	_, vel := playerBody(t, e)

	last := 0
	for frame := 0; frame < 400; frame++ {
		vel.ChangeX = cfg.Player.MovementSpeed
		if frame%40 == 0 {
			factory.CreateProjectile(e, 500, 300, 500+float64(frame%7), 400)
		}
		if err := UpdateGameplay(e); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		if level.Score < last {
			t.Fatalf("frame %d: score dropped from %d to %d", frame, last, level.Score)
		}
		last = level.Score
		_, vel = playerBody(t, e)
	}
}
