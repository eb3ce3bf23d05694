package usecase

import (
	"context"
	"testing"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
	ucextract "github.com/VakaruGIT/NSMS/internal/usecase/extract"
)

func TestFetchStats_DefaultFields(t *testing.T) {
	client := &fakeStatsClient{body: []byte(`{"stats":{"message":"ok","number_subscribers":3,"monthly_revenue":9.42,"annual_revenue":113.04}}`)}

	out, err := NewFetchStats(client).Execute(context.Background(), ports.NewspaperStats, 5, nil)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if client.kind != ports.NewspaperStats || client.id != 5 {
		t.Fatalf("unexpected request %s/%d", client.kind, client.id)
	}
	if len(out.Fields) != 3 {
		t.Fatalf("expected 3 default fields, got %d", len(out.Fields))
	}
	if out.Fields[0].Name != "subscribers" || out.Fields[0].Value != "3" {
		t.Fatalf("unexpected first field %+v", out.Fields[0])
	}
}

func TestFetchStats_CustomFields(t *testing.T) {
	client := &fakeStatsClient{body: []byte(`{"stats":{"number_of_issues":4}}`)}

	fields := []ucextract.Field{{Name: "issues", Expr: "$.stats.number_of_issues"}}
	out, err := NewFetchStats(client).Execute(context.Background(), ports.SubscriberStats, 1, fields)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Fields) != 1 || out.Fields[0].Value != "4" {
		t.Fatalf("unexpected fields %+v", out.Fields)
	}
}

func TestFetchStats_ClientError(t *testing.T) {
	client := &fakeStatsClient{err: domain.NotFound("httpclient.get", "subscriber", 9)}

	_, err := NewFetchStats(client).Execute(context.Background(), ports.SubscriberStats, 9, nil)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
