package main

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
)

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	return w.Write(payload)
}

const sessionIdLength = 16

func newSessionId(r *rand.Rand) string {
	b := make([]byte, sessionIdLength)
	for i := range b {
		b[i] = byte('a' + r.IntN(26))
	}
	return string(b)
}
