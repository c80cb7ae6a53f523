package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData remembers where the player respawns.
type PlayerData struct {
	StartX float64
	StartY float64
}

var Player = donburi.NewComponentType[PlayerData]()
