package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10
const logPollPeriod = time.Millisecond * 250

// getGameUUIDWS streams the engine's game-log messages to a spectator
func (m *Mux) getGameUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := m.getSession(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		done := make(chan bool)
		go m.webSocketWriteLoop(s, conn, done)

		// the read loop only watches for the client going away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		close(done)
		_ = conn.Close()
	}
}

func (m *Mux) webSocketWriteLoop(s *session, conn *websocket.Conn, done chan bool) {
	pingTicker := time.NewTicker(pingPeriod)
	logTicker := time.NewTicker(logPollPeriod)
	defer func() {
		pingTicker.Stop()
		logTicker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-logTicker.C:
			s.lock.Lock()
			msgs := s.drainLogs()
			s.lock.Unlock()

			if len(msgs) == 0 {
				continue
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msgs); err != nil {
				logrus.WithError(err).Error("could not write log messages")
				return
			}
		}
	}
}
