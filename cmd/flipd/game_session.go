package main

import (
	"encoding/json"
	"time"

	"memoryflip/internal/flip"
)

type GameSession struct {
	SessionId string
	State     flip.GameState
	StartedAt time.Time
	EndedAt   time.Time
}

// SlotJSON is everything the renderer needs to draw one slot: its screen
// rect, the visual state of the tile there, and the atlas region to
// sample when the tile is face up. Hidden tiles never expose their atlas
// region (or identity), so a client cannot peek at the board.
type SlotJSON struct {
	Region flip.Rect  `json:"region"`
	State  string     `json:"state"`
	Src    *flip.Rect `json:"src,omitempty"`
}

type GameSessionJSON struct {
	SessionId string     `json:"session_id"`
	TileCount int        `json:"tile_count"`
	TileSize  int        `json:"tile_size"`
	Phase     string     `json:"phase"`
	Done      bool       `json:"done"`
	Slots     []SlotJSON `json:"slots"`
	StartedAt int64      `json:"started_at"`
	EndedAt   *int64     `json:"ended_at,omitempty"`
}

func (s GameSession) MarshalJSON() ([]byte, error) {
	slots := make([]SlotJSON, len(s.State.Slots))
	for i := range s.State.Slots {
		tile := &s.State.Tiles[i]
		slots[i] = SlotJSON{
			Region: s.State.Slots[i],
			State:  tile.State.String(),
		}
		if tile.State != flip.Hidden {
			src := tile.Src
			slots[i].Src = &src
		}
	}
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(GameSessionJSON{
		SessionId: s.SessionId,
		TileCount: s.State.TileCount,
		TileSize:  s.State.TileSize,
		Phase:     s.State.Phase.String(),
		Done:      s.State.Done(),
		Slots:     slots,
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	})
}
