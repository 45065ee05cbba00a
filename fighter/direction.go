package fighter

import "github.com/automoto/mauricefight/config"

// Direction is the way a fighter faces. The zero value faces right.
type Direction int

const (
	Right Direction = iota
	Left
)

// Sign returns +1 for Right and -1 for Left.
func (d Direction) Sign() float64 {
	if d == Left {
		return config.DirectionLeft
	}
	return config.DirectionRight
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
