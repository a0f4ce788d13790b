package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/net/netutil"

	"github.com/math-server/math-server/worker"
)

const DefaultPort = 18000

type Config struct {
	// Host to bind to, all interfaces if empty.
	Host string
	// Port to bind to, an ephemeral one if 0.
	Port int
	// Threads is the number of workers running completion handlers.
	Threads int
	// MaxConnections caps the number of connections served at once, no limit if 0.
	MaxConnections int
}

func DefaultConfig() Config {
	return Config{
		Port:    DefaultPort,
		Threads: runtime.NumCPU(),
	}
}

func (c Config) validate() error {
	if c.Threads < 1 {
		return errors.Errorf("number of threads must be positive, got %d", c.Threads)
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("invalid port number: %d", c.Port)
	}
	if c.MaxConnections < 0 {
		return errors.Errorf("maximum number of connections can't be negative, got %d", c.MaxConnections)
	}
	return nil
}

type Server struct {
	cfg      Config
	listener net.Listener
	pool     *worker.Pool
	sessions *SessionManager

	signals      chan os.Signal
	shutdown     chan struct{}
	shutdownOnce sync.Once
}

// New binds the listening socket and starts accepting connections; they are
// served once Run is called.
func New(cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "server error")
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
	if err != nil {
		return nil, errors.Wrap(err, "server error")
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	pool := worker.NewPool()
	s := &Server{
		cfg:      cfg,
		listener: ln,
		pool:     pool,
		sessions: NewSessionManager(pool),
		signals:  make(chan os.Signal, 1),
		shutdown: make(chan struct{}),
	}
	s.waitForSignal()
	s.accept()

	logger.WithField("addr", ln.Addr().String()).Infof("listening with %d thread(s)", cfg.Threads)
	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run serves connections until the server is shut down, either by a signal,
// by Shutdown or by cancelling ctx. It returns once every session is closed.
func (s *Server) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, s.Shutdown)
	defer stop()

	err := s.pool.Run(context.Background(), s.cfg.Threads)
	logger.Info("stopped")
	return err
}

// Shutdown stops accepting connections and closes every session, as if SIGTERM was received.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdown)
	})
}

func (s *Server) waitForSignal() {
	signal.Notify(s.signals, os.Interrupt, syscall.SIGTERM)
	s.pool.Go(func() func() {
		var sig os.Signal
		select {
		case sig = <-s.signals:
		case <-s.shutdown:
		}
		signal.Stop(s.signals)
		return func() {
			s.handleSignal(sig)
		}
	})
}

func (s *Server) handleSignal(sig os.Signal) {
	if sig != nil {
		logger.WithField("signal", sig.String()).Info("caught signal")
	} else {
		logger.Info("shutting down")
	}

	if err := s.listener.Close(); err != nil {
		logger.WithError(err).Error("couldn't close the listener")
	}
	if err := s.sessions.StopAll(); err != nil {
		logger.WithError(err).Error("couldn't close some sessions")
	}
}

func (s *Server) accept() {
	s.pool.Go(func() func() {
		conn, err := s.listener.Accept()
		return func() {
			s.handleAccept(conn, err)
		}
	})
}

func (s *Server) handleAccept(conn net.Conn, err error) {
	if err != nil {
		if !errors.Is(err, net.ErrClosed) {
			logger.WithError(err).Error("accept failed")
		}
		return
	}

	s.sessions.Start(s.sessions.Create(conn))
	s.accept()
}
