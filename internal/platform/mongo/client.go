package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"user-api/internal/common/logger"
)

// Client owns the process-wide document store connection. The driver reconnects
// on its own; lifecycle changes are reported through the server monitor.
type Client struct {
	client   *mongo.Client
	database string
}

// Open connects to uri and pings the primary before returning.
func Open(ctx context.Context, uri, database string, timeout time.Duration) (*Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty mongo uri")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetServerMonitor(NewServerMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().
		Str("database", database).
		Msg("MongoDB client initialized")

	return &Client{client: client, database: database}, nil
}

// Collection returns a handle to name in the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.client.Database(c.database).Collection(name)
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
