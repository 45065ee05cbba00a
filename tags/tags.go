package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Selected = donburi.NewTag().SetName("Selected")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
)
