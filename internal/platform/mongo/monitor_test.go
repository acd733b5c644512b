package mongo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/address"
	"go.mongodb.org/mongo-driver/mongo/description"

	"user-api/internal/common/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	logger.SetOutput(&buf, "test", zerolog.DebugLevel)
	return &buf
}

func changed(addr string, from, to description.ServerKind) *event.ServerDescriptionChangedEvent {
	return &event.ServerDescriptionChangedEvent{
		Address:             address.Address(addr),
		PreviousDescription: description.Server{Kind: from},
		NewDescription:      description.Server{Kind: to},
	}
}

func TestServerMonitor_Lifecycle(t *testing.T) {
	buf := captureLogs(t)
	m := NewServerMonitor()

	m.ServerOpening(&event.ServerOpeningEvent{Address: address.Address("db:27017")})
	assert.Contains(t, buf.String(), "Database connecting")

	m.ServerDescriptionChanged(changed("db:27017", description.Unknown, description.Standalone))
	assert.Contains(t, buf.String(), "Database connection established")
	assert.NotContains(t, buf.String(), "Database reconnected")

	m.ServerDescriptionChanged(changed("db:27017", description.Standalone, description.Unknown))
	assert.Contains(t, buf.String(), "Database connection lost")

	m.ServerDescriptionChanged(changed("db:27017", description.Unknown, description.Standalone))
	assert.Contains(t, buf.String(), "Database reconnected")
}

func TestServerMonitor_HeartbeatFailed(t *testing.T) {
	buf := captureLogs(t)
	m := NewServerMonitor()

	m.ServerHeartbeatFailed(&event.ServerHeartbeatFailedEvent{Failure: errors.New("connection refused")})

	assert.Contains(t, buf.String(), "Database connection error")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestServerMonitor_IgnoresSteadyState(t *testing.T) {
	buf := captureLogs(t)
	m := NewServerMonitor()

	m.ServerDescriptionChanged(changed("db:27017", description.Standalone, description.Standalone))
	assert.Empty(t, buf.String())
}
