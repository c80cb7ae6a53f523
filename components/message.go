package components

import "github.com/yohamta/donburi"

// MessageData is a singleton tracking the banner on screen
type MessageData struct {
	Text         string
	DisplayTimer int // Frames remaining to display the banner
}

var Message = donburi.NewComponentType[MessageData]()
