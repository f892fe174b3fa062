package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

// handleConnectWs keeps a renderer attached to a session: each text
// message is a newline-separated command batch, each reply is the full
// session state to draw. A client animates the reveal delay simply by
// sending "t 1" once per frame.
func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	var session GameSession
	if err := kvs.Get(r.PathValue("id"), &session); err == ErrNotFound {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)
		for _, cmd := range strings.Split(text, "\n") {
			if err := executeCommand(&session.State, cmd); err != nil {
				log.Error("command: ", err)
				return
			}
			if session.State.Done() {
				if session.EndedAt.IsZero() {
					session.EndedAt = time.Now().UTC()
				}
				break
			}
		}
		if err := kvs.Set(session.SessionId, session); err != nil {
			log.Error(err)
			return
		}
		if err := c.WriteJSON(session); err != nil {
			log.Error("write: ", err)
			break
		}
		log.Debug("\t< <session data>")
	}
}
