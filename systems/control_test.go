package systems

import (
	"math"
	"testing"

	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi"
)

type fakeStepper struct {
	grounded bool
	steps    int
}

func (s *fakeStepper) Step()         { s.steps++ }
func (s *fakeStepper) CanJump() bool { return s.grounded }

var (
	idle     = components.ActionState{}
	pressed  = components.ActionState{Pressed: true, JustPressed: true}
	held     = components.ActionState{Pressed: true}
	released = components.ActionState{JustReleased: true}
)

func TestApplyMovement(t *testing.T) {
	speed := cfg.Player.MovementSpeed

	tests := []struct {
		name        string
		start       float64
		left, right components.ActionState
		want        float64
	}{
		{name: "press left", start: 0, left: pressed, right: idle, want: -speed},
		{name: "press right", start: 0, left: idle, right: pressed, want: speed},
		{name: "hold keeps speed", start: speed, left: idle, right: held, want: speed},
		{name: "release right stops", start: speed, left: idle, right: released, want: 0},
		{name: "release left stops", start: -speed, left: released, right: idle, want: 0},
		{name: "release other key stops", start: speed, left: released, right: held, want: 0},
		{name: "nothing", start: 0, left: idle, right: idle, want: 0},
		{name: "no key held stops", start: speed, left: idle, right: idle, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vel := &engine.Velocity{ChangeX: tt.start}
			ApplyMovement(vel, tt.left, tt.right)
			if vel.ChangeX != tt.want {
				t.Errorf("ChangeX = %v, want %v", vel.ChangeX, tt.want)
			}
		})
	}
}

func TestTryJump(t *testing.T) {
	vel := &engine.Velocity{ChangeY: -3}
	if TryJump(vel, &fakeStepper{grounded: false}) {
		t.Error("jumped in mid-air")
	}
	if vel.ChangeY != -3 {
		t.Errorf("ChangeY = %v after refused jump, want -3", vel.ChangeY)
	}

	if !TryJump(vel, &fakeStepper{grounded: true}) {
		t.Error("refused jump on the ground")
	}
	if vel.ChangeY != cfg.Player.JumpSpeed {
		t.Errorf("ChangeY = %v, want %v", vel.ChangeY, cfg.Player.JumpSpeed)
	}
}

func TestFireAtSetsAngleAndVelocity(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	obj, _ := playerBody(t, e)
	px, py := engine.Center(obj)

	FireAt(e, px+100, py+100)

	var fired *donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) { fired = entry })
	if fired == nil {
		t.Fatal("no projectile created")
	}

	proj := components.Projectile.Get(fired)
	if math.Abs(proj.Angle-45) > 1e-9 {
		t.Errorf("Angle = %v, want 45", proj.Angle)
	}
	if sprite := components.Sprite.Get(fired); sprite.Rotation != proj.Angle {
		t.Errorf("Rotation = %v, want %v", sprite.Rotation, proj.Angle)
	}

	vel := components.Physics.Get(fired)
	want := cfg.Projectile.Speed * math.Sqrt2 / 2
	if math.Abs(vel.ChangeX-want) > 1e-9 || math.Abs(vel.ChangeY-want) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.ChangeX, vel.ChangeY, want, want)
	}

	if x, y := engine.Center(components.Object.Get(fired).Object); x != px || y != py {
		t.Errorf("projectile starts at (%v, %v), want player centre (%v, %v)", x, y, px, py)
	}
	if got := pendingSounds(e, cfg.SoundLaser); got != 1 {
		t.Errorf("laser cues = %d, want 1", got)
	}
}

func TestFireAtBehindPlayer(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	obj, _ := playerBody(t, e)
	px, py := engine.Center(obj)

	FireAt(e, px-50, py)

	entry, ok := tags.Projectile.First(e.World)
	if !ok {
		t.Fatal("no projectile created")
	}
	if angle := components.Projectile.Get(entry).Angle; math.Abs(angle-180) > 1e-9 {
		t.Errorf("Angle = %v, want 180", angle)
	}
	if vel := components.Physics.Get(entry); vel.ChangeX != -cfg.Projectile.Speed {
		t.Errorf("ChangeX = %v, want %v", vel.ChangeX, -cfg.Projectile.Speed)
	}
}

func TestUpdatePlayerControlJumpsFromGround(t *testing.T) {
	quietLevels(t)
	e := newTestWorld(t, fakeLoader{1: flatMap(20)})
	level := GetLevel(e)
	stepper := &fakeStepper{grounded: true}
	level.Stepper = stepper

	input := GetInput(e)
	input.Current[cfg.ActionJump] = true
	input.Current[cfg.ActionMoveRight] = true

	UpdatePlayerControl(e)

	_, vel := playerBody(t, e)
	if vel.ChangeY != cfg.Player.JumpSpeed {
		t.Errorf("ChangeY = %v, want %v", vel.ChangeY, cfg.Player.JumpSpeed)
	}
	if vel.ChangeX != cfg.Player.MovementSpeed {
		t.Errorf("ChangeX = %v, want %v", vel.ChangeX, cfg.Player.MovementSpeed)
	}
	if got := pendingSounds(e, cfg.SoundJump); got != 1 {
		t.Errorf("jump cues = %d, want 1", got)
	}
	if stepper.steps != 0 {
		t.Error("control stepped the physics")
	}
}
