// Package engine adapts resolv's spatial hash into the collaborator the game
// loop talks to: box geometry in y-up world space, overlap queries filtered
// by tag, and a platformer physics stepper.
package engine

import "github.com/solarlune/resolv"

// World space is y-up. An object's X/Y is its bottom-left corner.

func Left(o *resolv.Object) float64   { return o.X }
func Right(o *resolv.Object) float64  { return o.X + o.W }
func Bottom(o *resolv.Object) float64 { return o.Y }
func Top(o *resolv.Object) float64    { return o.Y + o.H }

// Center returns the middle of the object's box.
func Center(o *resolv.Object) (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the object so its box is centred on (x, y). The spatial
// hash is not refreshed; call Update on the object once done moving it.
func SetCenter(o *resolv.Object, x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

// NewBox creates a resolv object centred on (x, y).
func NewBox(x, y, w, h float64, tags ...string) *resolv.Object {
	return resolv.NewObject(x-w/2, y-h/2, w, h, tags...)
}

// Overlaps reports whether the two boxes share any area. Touching edges do
// not count.
func Overlaps(a, b *resolv.Object) bool {
	return overlapsAt(a, 0, 0, b)
}
