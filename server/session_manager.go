package server

import (
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/math-server/math-server/worker"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// SessionManager keeps track of live sessions.
// A session is live from Start until it is removed by Stop or StopAll.
type SessionManager struct {
	pool *worker.Pool

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	// closed is set by StopAll; sessions started afterwards are stopped right away.
	closed bool
}

func NewSessionManager(pool *worker.Pool) *SessionManager {
	return &SessionManager{
		pool:     pool,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create returns a new session serving conn. The session isn't live until it is started.
func (m *SessionManager) Create(conn net.Conn) *Session {
	return newSession(m, m.pool, conn)
}

// Start registers the session and starts reading from its connection.
func (m *SessionManager) Start(s *Session) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		s.log.Debug("refusing session after shutdown")
		if err := s.stop(); err != nil {
			s.log.WithError(err).Warn("couldn't stop session")
		}
		return
	}
	m.sessions[s.id] = s
	s.start()
	m.mu.Unlock()
}

// Stop removes the session with the given id and stops it.
// It does nothing if the session has already been removed.
func (m *SessionManager) Stop(id uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return
	}
	if err := s.stop(); err != nil {
		s.log.WithError(err).Warn("couldn't stop session")
	}
}

// StopAll removes and stops every live session, and returns the errors encountered while closing them.
func (m *SessionManager) StopAll() error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.closed = true
	m.mu.Unlock()

	logger.Infof("closing the remaining %d session(s)", len(sessions))
	var err error
	for _, s := range sessions {
		err = multierr.Append(err, s.stop())
	}
	return err
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
