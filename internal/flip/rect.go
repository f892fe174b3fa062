package flip

import "fmt"

// Rect is an axis-aligned rectangle in pixel coordinates. It serves double
// duty as a slot's position on screen and as a tile's source region within
// the image atlas.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Point is a pixel position, typically a pointer click.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Contains reports whether p falls within r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%d:%d", r.W, r.H, r.X, r.Y)
}
