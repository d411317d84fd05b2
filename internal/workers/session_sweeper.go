package workers

import (
	"time"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/session"
)

// SessionSweeper periodically purges expired admin sessions from the
// registry. Expired entries are also dropped lazily on lookup; the sweeper
// only keeps the registry from accumulating entries nobody looks up again.
type SessionSweeper struct {
	sessions *session.Registry
	interval time.Duration

	done chan struct{}

	logger *logger.Logger
}

// NewSessionSweeper constructs a sweeper that purges the given registry
// every interval.
func NewSessionSweeper(sessions *session.Registry, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. The loop exits when Stop is called.
func (s *SessionSweeper) Run() {
	go s.loop()
}

// Stop terminates the sweep loop. Safe to call once.
func (s *SessionSweeper) Stop() {
	close(s.done)
}

func (s *SessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.sessions.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired admin sessions swept")
			}
		case <-s.done:
			return
		}
	}
}
