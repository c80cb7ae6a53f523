package engine

import (
	"math"

	"github.com/solarlune/resolv"
)

// Stepper advances a body by one frame of physics.
type Stepper interface {
	Step()
	CanJump() bool
}

// Velocity is the per-frame displacement of a body, in pixels.
type Velocity struct {
	ChangeX float64
	ChangeY float64
}

// Platformer applies gravity to a body and stops it against walls. Vertical
// movement is resolved before horizontal so landing on a ledge while running
// into it keeps the body on top.
type Platformer struct {
	Body     *resolv.Object
	Velocity *Velocity
	Gravity  float64

	// GroundProbe is how far below the body CanJump looks for a wall.
	GroundProbe float64

	wallTags []string
}

// NewPlatformer binds a stepper to body. Objects carrying any of wallTags
// are solid.
func NewPlatformer(body *resolv.Object, vel *Velocity, gravity, groundProbe float64, wallTags ...string) *Platformer {
	return &Platformer{
		Body:        body,
		Velocity:    vel,
		Gravity:     gravity,
		GroundProbe: groundProbe,
		wallTags:    wallTags,
	}
}

// Step integrates gravity and moves the body, first on y then on x.
// Hitting a floor or ceiling zeroes ChangeY. ChangeX is kept so a held
// direction keeps pressing against a wall.
func (p *Platformer) Step() {
	p.Velocity.ChangeY -= p.Gravity

	p.moveY(p.Velocity.ChangeY)
	p.moveX(p.Velocity.ChangeX)

	if p.Body.Space != nil {
		p.Body.Update()
	}
}

// CanJump reports whether a wall lies within GroundProbe pixels below the
// body.
func (p *Platformer) CanJump() bool {
	return len(CollisionsAt(p.Body, 0, -p.GroundProbe, p.wallTags...)) > 0
}

func (p *Platformer) moveY(dy float64) {
	p.Body.Y += dy
	hits := Collisions(p.Body, p.wallTags...)
	if len(hits) == 0 {
		return
	}

	if dy > 0 {
		lowest := math.Inf(1)
		for _, h := range hits {
			lowest = math.Min(lowest, Bottom(h))
		}
		p.Body.Y = lowest - p.Body.H
	} else {
		// Falling, resting, or spawned inside a wall: stand on top of it.
		highest := math.Inf(-1)
		for _, h := range hits {
			highest = math.Max(highest, Top(h))
		}
		p.Body.Y = highest
	}
	p.Velocity.ChangeY = 0
}

func (p *Platformer) moveX(dx float64) {
	if dx == 0 {
		return
	}
	p.Body.X += dx
	hits := Collisions(p.Body, p.wallTags...)
	if len(hits) == 0 {
		return
	}

	if dx > 0 {
		nearest := math.Inf(1)
		for _, h := range hits {
			nearest = math.Min(nearest, Left(h))
		}
		p.Body.X = nearest - p.Body.W
	} else {
		nearest := math.Inf(-1)
		for _, h := range hits {
			nearest = math.Max(nearest, Right(h))
		}
		p.Body.X = nearest
	}
}
