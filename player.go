package main

// form is the player's current shape. Exactly one is active at a time.
type form uint8

const (
	formCube form = iota
	formPlane
)

func (f form) String() string {
	switch f {
	case formCube:
		return "cube"
	case formPlane:
		return "plane"
	}
	return "unknown"
}

// other returns the form a portal flips to.
func (f form) other() form {
	if f == formCube {
		return formPlane
	}
	return formCube
}

// player is the single live actor. It is rebuilt, not mutated, when the form
// changes so no state from the previous form leaks into the next.
type player struct {
	x, y     float64
	rotation float64
	velocity float64
	form     form
	grounded bool
}

// newPlayer places a fresh player of the given form at rest.
func newPlayer(f form, x, y float64) *player {
	return &player{x: x, y: y, form: f}
}
