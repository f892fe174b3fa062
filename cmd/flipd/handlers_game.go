package main

import (
	"errors"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"memoryflip/internal/flip"
)

var (
	dec = schema.NewDecoder()
	rnd = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	TileCount int     `schema:"tile_count,required"`
	TileSize  int     `schema:"tile_size"`
	AtlasCols int     `schema:"atlas_cols"`
	Seed      *uint64 `schema:"seed"`
}

type ClickParams struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type TickParams struct {
	N int `schema:"n"`
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Status string `json:"status"`
	}{"ok"}
	if _, err := sendJSON(w, payload); err != nil {
		log.Error(err)
	}
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	var gameParams NewGameParams
	if err := dec.Decode(&gameParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	params := flip.GameParams{
		TileCount: gameParams.TileCount,
		TileSize:  gameParams.TileSize,
		AtlasCols: gameParams.AtlasCols,
	}
	rng := rnd
	if gameParams.Seed != nil {
		// deterministic game, mostly useful for client testing
		rng = rand.New(rand.NewPCG(*gameParams.Seed, *gameParams.Seed))
	}

	game, err := flip.NewGame(&params, rng)
	if err != nil {
		var confErr flip.ConfigurationError
		if errors.As(err, &confErr) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(confErr.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if config.FlipDelayTicks > 0 {
		game.DelayTicks = config.FlipDelayTicks
	}

	session := &GameSession{
		SessionId: newSessionId(rnd),
		State:     *game,
		StartedAt: time.Now().UTC(),
	}
	if err := kvs.Set(session.SessionId, session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	log.Debug("created session ", session.SessionId)
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func loadSession(w http.ResponseWriter, r *http.Request) (*GameSession, bool) {
	var session GameSession
	if err := kvs.Get(r.PathValue("id"), &session); err == ErrNotFound {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return nil, false
	}
	return &session, true
}

func saveAndSend(w http.ResponseWriter, session *GameSession) {
	if session.State.Done() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := kvs.Set(session.SessionId, session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := loadSession(w, r)
	if !ok {
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleClick(w http.ResponseWriter, r *http.Request) {
	var clickParams ClickParams
	if err := dec.Decode(&clickParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := loadSession(w, r)
	if !ok {
		return
	}
	session.State.Click(flip.Point{X: clickParams.X, Y: clickParams.Y})
	saveAndSend(w, session)
}

func handleTick(w http.ResponseWriter, r *http.Request) {
	var tickParams TickParams
	if err := dec.Decode(&tickParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	n := tickParams.N
	if n < 1 {
		n = 1
	}
	session, ok := loadSession(w, r)
	if !ok {
		return
	}
	for range n {
		session.State.Tick()
	}
	saveAndSend(w, session)
}

func handleBatch(w http.ResponseWriter, r *http.Request) {
	session, ok := loadSession(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	for i, c := range strings.Split(lines, "\n") {
		if err := executeCommand(&session.State, c); err != nil {
			payload := struct {
				Loc     int    `json:"loc"`
				Message string `json:"message"`
			}{i, err.Error()}
			w.WriteHeader(http.StatusBadRequest)
			if _, err := sendJSON(w, payload); err != nil {
				log.Error(err)
			}
			return
		}
		if session.State.Done() {
			break
		}
	}
	saveAndSend(w, session)
}
