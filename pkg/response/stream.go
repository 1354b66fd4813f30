package response

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const writeWait = 5 * time.Second

// JSONConn is the write half of a websocket connection.
type JSONConn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v any) error
}

// Stream writes event frames to a websocket. After the first failed write the
// connection is treated as gone and later frames are dropped silently.
type Stream struct {
	conn   JSONConn
	logger *log.Logger

	mu   sync.Mutex
	dead bool
}

func NewStream(conn JSONConn, logger *log.Logger) *Stream {
	return &Stream{conn: conn, logger: logger}
}

// Send writes msg unless an earlier write failed. It reports whether msg was
// written.
func (s *Stream) Send(msg any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dead {
		return false
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.dead = true
		s.logger.Debug("Failed to write stream frame, dropping further frames", "err", err)
		return false
	}
	return true
}
