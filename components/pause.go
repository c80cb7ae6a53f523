package components

import "github.com/yohamta/donburi"

// PauseData stores whether the game is paused
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
