package ports

import (
	"context"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

type StatsKind string

const (
	NewspaperStats  StatsKind = "newspaper"
	SubscriberStats StatsKind = "subscriber"
)

// StatsClient fetches stats documents from a running server.
type StatsClient interface {
	Stats(ctx context.Context, kind StatsKind, id domain.ID) ([]byte, error)
}
