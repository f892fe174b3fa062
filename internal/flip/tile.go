package flip

// VisState is a tile's visual state as the renderer should draw it.
type VisState int8

const (
	Hidden VisState = iota
	Flipped
	Solved
)

func (s VisState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flipped:
		return "flipped"
	case Solved:
		return "solved"
	default:
		return "!"
	}
}

// Tile is one game piece. ID is an opaque identity token shared by exactly
// one other tile (its pair); Src is the atlas region to sample when the
// tile is face up.
//
// The identity and state travel with the source region, never with the
// screen position: shuffling reorders tiles while slots stay put, so the
// tile found at a clicked slot index always carries the image actually
// drawn there.
type Tile struct {
	ID    string
	State VisState
	Src   Rect
}
