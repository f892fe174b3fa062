package main

import (
	"database/sql"
	"fmt"
	"math/rand/v2"
	"os"
	"reflect"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"memoryflip/internal/flip"
)

func setupTestStore() (*Store, func(), error) {
	f, err := os.CreateTemp("", "flipd-sessions-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	db, err := sql.Open("sqlite3", f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect sqlite db: %v", err)
	}

	s, err := NewStore(db, "teststore")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create new store: %v", err)
	}

	teardown := func() {
		db.Close()
		f.Close()
		os.Remove(f.Name())
	}

	return s, teardown, nil
}

func TestStoreBadName(t *testing.T) {
	if _, err := NewStore(nil, "drop table;--"); err != ErrBadName {
		t.Fatalf("expected bad name error, received %v", err)
	}
	if _, err := NewStore(nil, ""); err != ErrBadName {
		t.Fatalf("expected bad name error, received %v", err)
	}
}

func TestStoreReadEmpty(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	var nothing struct{}
	if err = s.Get("some key", &nothing); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestStoreSessionRoundTrip(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	game, err := flip.NewGame(
		&flip.GameParams{TileCount: 16},
		rand.New(rand.NewPCG(1, 2)),
	)
	if err != nil {
		t.Fatal(err)
	}
	session := GameSession{
		SessionId: "abcdefgh",
		State:     *game,
		StartedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.Set(session.SessionId, session); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	var rtSession GameSession
	if err := s.Get(session.SessionId, &rtSession); err != nil {
		t.Fatalf("failed to get value: %v", err)
	}

	if !reflect.DeepEqual(session.State, rtSession.State) {
		t.Fatalf("game state did not survive round trip:\nhave %+v\nwant %+v",
			rtSession.State, session.State)
	}
	if !session.StartedAt.Equal(rtSession.StartedAt) {
		t.Fatalf("have %v, want %v", rtSession.StartedAt, session.StartedAt)
	}
}

func TestStoreUpdate(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	r := rand.New(rand.NewPCG(1, 2))
	key := "key"
	val := r.Int32()

	if err = s.Set(key, val); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	val = r.Int32()
	if err = s.Set(key, val); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	var rtVal int32
	if err = s.Get(key, &rtVal); err != nil {
		t.Fatalf("failed to get value: %v", err)
	}

	if val != rtVal {
		t.Fatalf("failed to update value (expected %v, actual %v)", val, rtVal)
	}
}

func TestStoreDeleteAndCount(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	for _, key := range []string{"a", "b", "c"} {
		if err := s.Set(key, key); err != nil {
			t.Fatal(err)
		}
	}

	if count, err := s.Count(); err != nil {
		t.Fatal(err)
	} else if count != 3 {
		t.Fatalf("have %d, want 3", count)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("failed to delete value: %v", err)
	}
	if err := s.Delete("missing"); err != nil {
		t.Fatalf("deleting a missing key errored: %v", err)
	}

	if count, err := s.Count(); err != nil {
		t.Fatal(err)
	} else if count != 2 {
		t.Fatalf("have %d, want 2", count)
	}

	if err := s.Get("a", nil); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}
