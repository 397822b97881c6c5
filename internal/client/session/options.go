package session

import (
	"time"

	"github.com/dmitrijs2005/pocket/internal/logging"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBusyTimeout sets how long the database waits on a locked file.
func WithBusyTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.busyTimeout = d
	}
}
