package mongo

import (
	"sync"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/description"

	"user-api/internal/common/logger"
)

// lifecycle tracks which servers have been reachable at least once so that a
// recovered server is logged as reconnected rather than connected.
type lifecycle struct {
	mu   sync.Mutex
	seen map[string]bool
}

// NewServerMonitor logs connecting, connected, reconnected, lost and error events.
func NewServerMonitor() *event.ServerMonitor {
	l := &lifecycle{seen: make(map[string]bool)}
	return &event.ServerMonitor{
		ServerOpening:            l.opening,
		ServerDescriptionChanged: l.descriptionChanged,
		ServerHeartbeatFailed:    l.heartbeatFailed,
	}
}

func (l *lifecycle) opening(e *event.ServerOpeningEvent) {
	logger.Info().Str("address", e.Address.String()).Msg("Database connecting")
}

func (l *lifecycle) descriptionChanged(e *event.ServerDescriptionChangedEvent) {
	addr := e.Address.String()
	wasUp := e.PreviousDescription.Kind != description.Unknown
	isUp := e.NewDescription.Kind != description.Unknown

	switch {
	case !wasUp && isUp:
		l.mu.Lock()
		reconnected := l.seen[addr]
		l.seen[addr] = true
		l.mu.Unlock()

		if reconnected {
			logger.Info().Str("address", addr).Msg("Database reconnected")
			return
		}
		logger.Info().Str("address", addr).Msg("Database connection established")
	case wasUp && !isUp:
		logger.Warn().Str("address", addr).Msg("Database connection lost")
	}
}

func (l *lifecycle) heartbeatFailed(e *event.ServerHeartbeatFailedEvent) {
	logger.Error().
		Err(e.Failure).
		Str("connection_id", e.ConnectionID).
		Msg("Database connection error")
}
