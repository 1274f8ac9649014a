package components

import "github.com/yohamta/donburi"

// FlashData tints a pig or block for a few frames after a hit.
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
