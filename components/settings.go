package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that survive level changes within a scene
type SettingsData struct {
	Debug bool
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()
