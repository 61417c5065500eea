package sync

import (
	"errors"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/gorilla/websocket"
)

// Sentinel errors for session delivery.
var (
	// ErrSessionClosed is returned when a patch is queued on a closed session.
	ErrSessionClosed = errors.New("sync: session closed")

	// ErrQueueFull is returned when the outbound patch buffer is full and a
	// patch is dropped.
	ErrQueueFull = errors.New("sync: patch queue full")
)

// SessionConfig holds configuration for a Session.
type SessionConfig struct {
	// WriteTimeout is the maximum time to wait when sending a patch.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// PingInterval is the time between keepalive pings.
	// Default: 30 seconds.
	PingInterval time.Duration

	// QueueSize is the outbound patch buffer size.
	// Default: 64.
	QueueSize int

	// Logger receives write failures. Default: slog.Default.
	Logger *slog.Logger
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
		QueueSize:    64,
	}
}

// Session delivers URL patches to one WebSocket client. A write pump
// goroutine owns the connection; Queue hands patches to the pump and never
// blocks on the network. The session closes itself when a write fails, so a
// dead client never wedges the server side.
type Session struct {
	conn   *websocket.Conn
	config SessionConfig
	logger *slog.Logger

	out  chan Patch
	done chan struct{}

	closeOnce stdsync.Once
}

// NewSession wraps an upgraded WebSocket connection and starts its write
// pump. The caller keeps ownership of reads; this session only writes.
func NewSession(conn *websocket.Conn, config SessionConfig) *Session {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultSessionConfig().WriteTimeout
	}
	if config.PingInterval <= 0 {
		config.PingInterval = DefaultSessionConfig().PingInterval
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultSessionConfig().QueueSize
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		conn:   conn,
		config: config,
		logger: logger,
		out:    make(chan Patch, config.QueueSize),
		done:   make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

// Queue hands a patch to the write pump. It returns ErrSessionClosed after
// Close and ErrQueueFull when the client cannot keep up.
func (s *Session) Queue(p Patch) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}

	select {
	case s.out <- p:
		return nil
	case <-s.done:
		return ErrSessionClosed
	default:
		return ErrQueueFull
	}
}

// Close stops the write pump and sends a close frame. Safe to call more
// than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// Done returns a channel closed when the session stops.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// writeLoop is the write pump: it owns all writes to the connection,
// serializing patches and keepalive pings.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()
	defer s.conn.Close()

	for {
		select {
		case p := <-s.out:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteJSON(p); err != nil {
				s.logger.Warn("patch write failed", "err", err)
				s.Close()
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Warn("ping failed", "err", err)
				s.Close()
				return
			}

		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
