package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BobData drives a purely visual vertical offset. The collision box does not
// move.
type BobData struct {
	Sequence *gween.Sequence
	OffsetY  float64
}

var Bob = donburi.NewComponentType[BobData]()
