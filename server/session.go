package server

import (
	"bufio"
	"io"
	"net"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/math-server/math-server/out"
	"github.com/math-server/math-server/worker"
)

// Session serves a single client connection: it reads a line, replies to it, and reads the next one.
type Session struct {
	id     uuid.UUID
	conn   net.Conn
	reader *bufio.Reader

	mgr    *SessionManager
	pool   *worker.Pool
	strand worker.Strand

	stops atomic.Int32
	log   logrus.FieldLogger
}

// MaxRequestLen is the longest request line a session accepts, terminator included.
// A client exceeding it is disconnected.
const MaxRequestLen = 1 << 20

var errRequestTooLong = errors.Errorf("request line longer than %d bytes", MaxRequestLen)

func newSession(mgr *SessionManager, pool *worker.Pool, conn net.Conn) *Session {
	s := &Session{
		id:     uuid.New(),
		conn:   conn,
		reader: bufio.NewReader(conn),
		mgr:    mgr,
		pool:   pool,
	}
	s.log = logger.WithFields(logrus.Fields{
		"session": s.id.String(),
		"remote":  s.RemoteAddr().String(),
	})
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}

func (s *Session) start() {
	s.log.Debug("session started")
	s.read()
}

// stop shuts the connection down in both directions and closes it.
// Only the first call has any effect.
func (s *Session) stop() error {
	if s.stops.Add(1) > 1 {
		s.log.Debug("session already stopped")
		return nil
	}
	s.log.Debug("stopping session")
	return s.close()
}

type halfCloser interface {
	CloseRead() error
	CloseWrite() error
}

func (s *Session) close() error {
	var err error
	if hc, ok := s.conn.(halfCloser); ok {
		err = multierr.Append(hc.CloseRead(), hc.CloseWrite())
	}
	err = multierr.Append(err, s.conn.Close())
	return errors.Wrap(err, "session error")
}

func (s *Session) read() {
	s.pool.Go(func() func() {
		line, err := readLine(s.reader, MaxRequestLen)
		return s.strand.Wrap(func() {
			s.handleRead(line, err)
		})
	})
}

// readLine reads up to and including the next '\n', failing once more than limit bytes are buffered.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if len(line)+len(chunk) > limit {
			return "", errRequestTooLong
		}
		line = append(line, chunk...)
		if err != bufio.ErrBufferFull {
			return string(line), err
		}
	}
}

func (s *Session) handleRead(line string, err error) {
	if err != nil {
		s.fail("read", err)
		return
	}
	s.write(calcReply(out.TrimRequest(line)))
}

func (s *Session) write(reply string) {
	s.pool.Go(func() func() {
		err := out.Reply(s.conn, reply)
		return s.strand.Wrap(func() {
			s.handleWrite(err)
		})
	})
}

func (s *Session) handleWrite(err error) {
	if err != nil {
		s.fail("write", err)
		return
	}
	s.read()
}

// fail unregisters the session after an I/O error.
func (s *Session) fail(op string, err error) {
	entry := s.log.WithField("op", op).WithError(err)
	if isShutdown(err) {
		entry.Debug("connection closed")
	} else {
		entry.Error("connection failed")
	}
	s.mgr.Stop(s.id)
}

// isShutdown reports whether err is what a session expects to see once either side closes the connection.
func isShutdown(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe)
}
