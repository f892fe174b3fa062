package flip

import "math/rand/v2"

// Phase is the turn controller's state.
type Phase int8

const (
	Idle       Phase = iota // no tiles flipped this round
	OneFlipped              // one tile up, waiting for its candidate pair
	Resolving               // two tiles up, reveal delay running
	Complete                // every tile solved; terminal
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case OneFlipped:
		return "one-flipped"
	case Resolving:
		return "resolving"
	case Complete:
		return "complete"
	default:
		return "!"
	}
}

const (
	// maxFlipped is the number of face-up, unsolved tiles a round allows.
	maxFlipped = 2

	// DefaultDelayTicks is how many ticks two flipped tiles stay visible
	// before the match check runs.
	DefaultDelayTicks = 40
)

// Controller drives tile selection, the reveal delay and match
// resolution. It never touches slot geometry beyond asking the board
// which tile a click landed on.
type Controller struct {
	Phase        Phase
	Pending      [2]int // slot indices of the tiles flipped this round
	FlippedCount int
	FlipTimer    int
	DelayTicks   int
}

// GameState bundles a board with the controller driving it. It is the
// unit a session stores and the platform layer steps.
type GameState struct {
	Board
	Controller
}

// NewGame builds a board from params, shuffles it exactly once and
// attaches a controller with the default reveal delay.
func NewGame(params *GameParams, r *rand.Rand) (*GameState, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	board.Shuffle(r)
	return &GameState{
		Board:      *board,
		Controller: Controller{DelayTicks: DefaultDelayTicks},
	}, nil
}

// Click handles a pointer press at p. While two tiles are resolving (and
// once the game is complete) clicks are ignored, as are clicks that miss
// every slot or land on a tile that is already face up. A valid hit flips
// the tile and records its slot as the round's first or second selection.
// Clicking the same slot twice in a round falls out naturally: the second
// click no longer finds a hidden tile there.
func (g *GameState) Click(p Point) {
	if g.Phase != Idle && g.Phase != OneFlipped {
		return
	}
	i, ok := g.SlotIndexAt(p)
	if !ok {
		return
	}
	if g.Tiles[i].State != Hidden {
		return
	}
	g.Tiles[i].State = Flipped
	g.Pending[g.FlippedCount] = i
	g.FlippedCount++
	if g.FlippedCount >= maxFlipped {
		g.Phase = Resolving
	} else {
		g.Phase = OneFlipped
	}
}

// Tick advances the reveal delay by one frame; outside Resolving it does
// nothing. Once the delay elapses the two pending tiles are compared by
// identity: a match solves both, a mismatch hides both, and the round
// resets either way. Solving the last pair moves the game to Complete.
func (g *GameState) Tick() {
	if g.Phase != Resolving {
		return
	}
	g.FlipTimer++
	if g.FlipTimer <= g.DelayTicks {
		return
	}
	first := &g.Tiles[g.Pending[0]]
	second := &g.Tiles[g.Pending[1]]
	if first.ID == second.ID {
		first.State = Solved
		second.State = Solved
		Log.Debugf("matched %s at slots %d and %d",
			first.ID, g.Pending[0], g.Pending[1])
	} else {
		first.State = Hidden
		second.State = Hidden
	}
	g.FlippedCount = 0
	g.FlipTimer = 0
	if g.AllSolved() {
		g.Phase = Complete
	} else {
		g.Phase = Idle
	}
}

// Done reports whether the game has been completed.
func (g *GameState) Done() bool {
	return g.Phase == Complete
}
