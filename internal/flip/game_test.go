package flip

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// newUnshuffledGame builds a 4-tile game in setup order, so slot 0 and
// slot 2 hold one pair and slot 1 and slot 3 the other.
func newUnshuffledGame(t *testing.T) *GameState {
	t.Helper()
	board, err := NewBoard(&GameParams{TileCount: 4}, testRand())
	require.NoError(t, err)
	return &GameState{
		Board:      *board,
		Controller: Controller{DelayTicks: DefaultDelayTicks},
	}
}

func clickSlot(g *GameState, i int) {
	slot := g.Slots[i]
	g.Click(Point{X: slot.X + slot.W/2, Y: slot.Y + slot.H/2})
}

func countFlipped(g *GameState) (n int) {
	for _, tile := range g.Tiles {
		if tile.State == Flipped {
			n++
		}
	}
	return
}

func resolve(g *GameState) {
	for range g.DelayTicks + 1 {
		g.Tick()
	}
}

func TestMatchSolvesPair(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	require.Equal(t, OneFlipped, g.Phase)
	clickSlot(g, 2) // same identity as slot 0
	require.Equal(t, Resolving, g.Phase)
	require.Equal(t, 2, countFlipped(g))

	// both stay face up for the whole delay
	for range g.DelayTicks {
		g.Tick()
		require.Equal(t, Resolving, g.Phase)
		require.Equal(t, 2, countFlipped(g))
	}

	g.Tick()
	require.Equal(t, Solved, g.Tiles[0].State)
	require.Equal(t, Solved, g.Tiles[2].State)
	require.Equal(t, 0, g.FlippedCount)
	require.Equal(t, 0, g.FlipTimer)
	require.Equal(t, Idle, g.Phase)
	require.False(t, g.AllSolved(), "one unsolved pair remains")
}

func TestMismatchHidesPair(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	clickSlot(g, 1) // different identity
	require.Equal(t, Resolving, g.Phase)

	resolve(g)
	require.Equal(t, Hidden, g.Tiles[0].State)
	require.Equal(t, Hidden, g.Tiles[1].State)
	require.Equal(t, 0, g.FlippedCount)
	require.Equal(t, 0, g.FlipTimer)
	require.Equal(t, Idle, g.Phase)
}

func TestSameSlotTwiceIsNoop(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	clickSlot(g, 0)
	require.Equal(t, OneFlipped, g.Phase)
	require.Equal(t, 1, g.FlippedCount)
	require.Equal(t, 1, countFlipped(g))
}

func TestThirdClickIgnoredWhileResolving(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	clickSlot(g, 1)
	g.Tick() // timer running, below threshold

	clickSlot(g, 3)
	require.Equal(t, Hidden, g.Tiles[3].State)
	require.Equal(t, 2, countFlipped(g))
	require.Equal(t, Resolving, g.Phase)
}

func TestClickingFaceUpTilesIsNoop(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	clickSlot(g, 2)
	resolve(g) // pair at 0 and 2 solved

	before := append([]Tile(nil), g.Tiles...)
	clickSlot(g, 0) // solved
	require.Equal(t, before, g.Tiles)
	require.Equal(t, Idle, g.Phase)

	clickSlot(g, 1) // now flipped
	clickSlot(g, 1) // flipped tile, no-op
	require.Equal(t, 1, countFlipped(g))
}

func TestClickOutsideBoardIsNoop(t *testing.T) {
	g := newUnshuffledGame(t)

	g.Click(Point{X: 0, Y: 0})
	g.Click(Point{X: -50, Y: 10_000})
	require.Equal(t, Idle, g.Phase)
	require.Equal(t, 0, countFlipped(g))
}

func TestTickOutsideResolvingIsNoop(t *testing.T) {
	g := newUnshuffledGame(t)

	g.Tick()
	require.Equal(t, 0, g.FlipTimer)

	clickSlot(g, 0)
	g.Tick()
	require.Equal(t, 0, g.FlipTimer)
	require.Equal(t, OneFlipped, g.Phase)
}

func TestWinDetection(t *testing.T) {
	g := newUnshuffledGame(t)

	clickSlot(g, 0)
	clickSlot(g, 2)
	resolve(g)
	require.False(t, g.Done())

	clickSlot(g, 1)
	clickSlot(g, 3)
	resolve(g)

	require.True(t, g.AllSolved())
	require.Equal(t, Complete, g.Phase)
	require.True(t, g.Done())

	// terminal: further input changes nothing
	clickSlot(g, 0)
	g.Tick()
	require.Equal(t, Complete, g.Phase)
}

func TestFullPlaythroughShuffled(t *testing.T) {
	g, err := NewGame(&GameParams{TileCount: 16}, rand.New(rand.NewPCG(3, 14)))
	require.NoError(t, err)

	byID := make(map[string][]int)
	for i, tile := range g.Tiles {
		byID[tile.ID] = append(byID[tile.ID], i)
	}

	for _, slots := range byID {
		require.Len(t, slots, 2)
		clickSlot(g, slots[0])
		require.LessOrEqual(t, countFlipped(g), maxFlipped)
		clickSlot(g, slots[1])
		require.Equal(t, 2, countFlipped(g))
		resolve(g)
		require.Equal(t, 0, countFlipped(g))
	}

	require.True(t, g.AllSolved())
	require.True(t, g.Done())
}
