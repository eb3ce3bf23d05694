package usecase

import (
	"context"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
	ucextract "github.com/VakaruGIT/NSMS/internal/usecase/extract"
)

// StatsOutput is the raw stats document plus the fields picked out of it.
type StatsOutput struct {
	Kind   ports.StatsKind
	ID     domain.ID
	Raw    []byte
	Fields []ucextract.Result
}

type FetchStats struct {
	client ports.StatsClient
}

func NewFetchStats(client ports.StatsClient) *FetchStats {
	return &FetchStats{client: client}
}

// Execute queries the server. With no fields, the default set for kind is used.
func (uc *FetchStats) Execute(ctx context.Context, kind ports.StatsKind, id domain.ID, fields []ucextract.Field) (StatsOutput, error) {
	raw, err := uc.client.Stats(ctx, kind, id)
	if err != nil {
		return StatsOutput{}, err
	}
	if len(fields) == 0 {
		fields = DefaultStatsFields(kind)
	}
	return StatsOutput{
		Kind:   kind,
		ID:     id,
		Raw:    raw,
		Fields: ucextract.Apply(raw, fields),
	}, nil
}

// DefaultStatsFields lists the figures shown by `nsms stats`.
func DefaultStatsFields(kind ports.StatsKind) []ucextract.Field {
	switch kind {
	case ports.NewspaperStats:
		return []ucextract.Field{
			{Name: "subscribers", Expr: "$.stats.number_subscribers"},
			{Name: "monthly revenue", Expr: "$.stats.monthly_revenue"},
			{Name: "annual revenue", Expr: "$.stats.annual_revenue"},
		}
	case ports.SubscriberStats:
		return []ucextract.Field{
			{Name: "subscriptions", Expr: "$.stats.number_of_subscriptions"},
			{Name: "monthly cost", Expr: "$.stats.monthly_cost"},
			{Name: "annual cost", Expr: "$.stats.annual_cost"},
			{Name: "delivered issues", Expr: "$.stats.number_of_issues"},
		}
	default:
		return nil
	}
}
