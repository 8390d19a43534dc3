package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"
	"quince-server/pkg/game/match"
	"quince-server/pkg/game/ronda"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string

	lock  sync.Mutex
	games map[string]*session
}

// session is one hosted match and the lock serializing access to it.
// The engine is strictly single-threaded; every handler takes the session
// lock before touching the match.
type session struct {
	lock  sync.Mutex
	match *match.Match

	// human is the name of the prompt-driven seat, or "" for an NPC-only game
	human string

	// pending holds log messages stashed from a finished ronda's channel
	// before the next ronda replaces it
	pending []*ronda.LogMessage
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		games:   make(map[string]*session),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodPost).Path("/play").Handler(this.postGameUUIDPlay())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())

	return this
}

func (m *Mux) getSession(id string) (*session, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	s, ok := m.games[id]
	return s, ok
}

func (m *Mux) putSession(id string, s *session) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.games[id] = s
}

// stashLogs moves the current ronda's buffered log messages into the session.
// It must be called before the match replaces the ronda, or the channel (and
// everything still in it) is lost.
func (s *session) stashLogs() {
	r := s.match.Current()
	if r == nil {
		return
	}

	for {
		select {
		case msgs := <-r.LogChan():
			s.pending = append(s.pending, msgs...)
		default:
			return
		}
	}
}

// drainLogs returns every stashed and currently buffered engine log message
func (s *session) drainLogs() []*ronda.LogMessage {
	s.stashLogs()

	out := s.pending
	s.pending = nil
	return out
}
