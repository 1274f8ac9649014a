package tags

import "github.com/yohamta/donburi"

var (
	Bird     = donburi.NewTag().SetName("Bird")
	Pig      = donburi.NewTag().SetName("Pig")
	Block    = donburi.NewTag().SetName("Block")
	Particle = donburi.NewTag().SetName("Particle")
	Cloud    = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for broadphase queries
const (
	ResolvBird  = "Bird"
	ResolvPig   = "Pig"
	ResolvBlock = "Block"
)
