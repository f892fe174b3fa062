package flip

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	// DefaultTileSize is the edge length of a tile in pixels, used when
	// GameParams leaves TileSize at zero.
	DefaultTileSize = 40

	boardOffsetX = 75
	boardOffsetY = 40
	slotSpacing  = 5

	idLength = 10
)

// GameParams describes a board to be set up. TileCount must be even and
// fill a square slot grid; TileSize and AtlasCols fall back to defaults
// when zero.
type GameParams struct {
	TileCount int // total tiles; N/2 distinct identities, each duplicated
	TileSize  int // tile edge length in pixels
	AtlasCols int // source regions per atlas row
}

// Board owns the tile sequence and the slot sequence, index-parallel:
// Slots[i] displays Tiles[i]. Slots are computed once and never reordered;
// only Tiles get permuted by Shuffle. Fields are exported so a whole board
// survives a gob round trip through the session store.
type Board struct {
	GameParams
	Tiles []Tile
	Slots []Rect
}

// NewBoard validates params, lays out the slot grid and the tiles' atlas
// regions, and assigns pair identities. Tiles come out in unshuffled
// order: the first half in atlas order, the second half a verbatim copy of
// the first. The duplication is explicit and happens before any shuffle,
// so every identity occurs exactly twice no matter what.
func NewBoard(params *GameParams, r *rand.Rand) (*Board, error) {
	b := &Board{GameParams: *params}
	if b.TileSize == 0 {
		b.TileSize = DefaultTileSize
	}
	if b.TileSize < 0 {
		return nil, ConfigurationError{fmt.Sprintf(
			"tile size must be positive, have %d", b.TileSize)}
	}
	if b.AtlasCols < 0 {
		return nil, ConfigurationError{fmt.Sprintf(
			"atlas columns must be positive, have %d", b.AtlasCols)}
	}
	if b.TileCount <= 0 || b.TileCount%2 != 0 {
		return nil, ConfigurationError{fmt.Sprintf(
			"tile count must be positive and even, have %d", b.TileCount)}
	}
	side, ok := squareSide(b.TileCount)
	if !ok {
		return nil, ConfigurationError{fmt.Sprintf(
			"%d tiles do not fill a square grid", b.TileCount)}
	}
	if b.AtlasCols == 0 {
		b.AtlasCols = side / 2
	}

	b.Tiles = make([]Tile, b.TileCount)
	b.Slots = make([]Rect, b.TileCount)
	b.layoutSlots(side)
	b.layoutTiles(r)
	return b, nil
}

func squareSide(n int) (int, bool) {
	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}
	return side, side*side == n
}

// layoutSlots computes the fixed screen rects, row-major left-to-right
// with a constant board offset and inter-tile spacing.
func (b *Board) layoutSlots(side int) {
	for i := range b.Slots {
		col, row := i%side, i/side
		b.Slots[i] = Rect{
			X: boardOffsetX + col*(b.TileSize+slotSpacing),
			Y: boardOffsetY + row*(b.TileSize+slotSpacing),
			W: b.TileSize,
			H: b.TileSize,
		}
	}
}

// layoutTiles fills the first half of the tile sequence with atlas regions
// (row-major, AtlasCols per row, no spacing) and fresh identity tokens,
// then duplicates that half into the second.
func (b *Board) layoutTiles(r *rand.Rand) {
	half := len(b.Tiles) / 2
	seen := make(map[string]bool, half)
	for i := range half {
		id := randomID(r)
		for seen[id] {
			id = randomID(r)
		}
		seen[id] = true
		b.Tiles[i] = Tile{
			ID: id,
			Src: Rect{
				X: (i % b.AtlasCols) * b.TileSize,
				Y: (i / b.AtlasCols) * b.TileSize,
				W: b.TileSize,
				H: b.TileSize,
			},
		}
	}
	copy(b.Tiles[half:], b.Tiles[:half])
}

// randomID draws an identity token of ten random digits.
func randomID(r *rand.Rand) string {
	digits := make([]byte, idLength)
	for i := range digits {
		digits[i] = byte('1' + r.IntN(9))
	}
	return string(digits)
}

// Shuffle applies a uniform random permutation to the tile sequence, in
// place. The slot sequence is untouched; it is the immutable reference
// frame clicks resolve against. Called exactly once, at game start.
func (b *Board) Shuffle(r *rand.Rand) {
	r.Shuffle(len(b.Tiles), func(i, j int) {
		b.Tiles[i], b.Tiles[j] = b.Tiles[j], b.Tiles[i]
	})
}

// TileAt returns the tile currently displayed at slot i.
func (b *Board) TileAt(i int) (*Tile, error) {
	if i < 0 || i >= len(b.Tiles) {
		return nil, IndexOutOfRange{i, len(b.Tiles)}
	}
	return &b.Tiles[i], nil
}

// SlotRegionAt returns the screen rect of slot i.
func (b *Board) SlotRegionAt(i int) (Rect, error) {
	if i < 0 || i >= len(b.Slots) {
		return Rect{}, IndexOutOfRange{i, len(b.Slots)}
	}
	return b.Slots[i], nil
}

// SlotIndexAt returns the index of the first slot whose rect contains p.
// Slots do not overlap, so at most one can match.
func (b *Board) SlotIndexAt(p Point) (int, bool) {
	for i, s := range b.Slots {
		if s.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// AllSolved reports whether every tile has been matched.
func (b *Board) AllSolved() bool {
	for i := range b.Tiles {
		if b.Tiles[i].State != Solved {
			return false
		}
	}
	return true
}
