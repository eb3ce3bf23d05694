package usecase

import (
	"context"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

type fakeSeedLoader struct {
	seed domain.Seed
	err  error
	path string
}

func (f *fakeSeedLoader) LoadSeed(path string) (domain.Seed, error) {
	f.path = path
	return f.seed, f.err
}

type fakeReportStore struct {
	saved bool
	last  domain.AgencyReport
	err   error
}

func (s *fakeReportStore) SaveReport(report domain.AgencyReport) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = report
	return "report-123", nil
}

type fakeStatsClient struct {
	body []byte
	err  error

	kind ports.StatsKind
	id   domain.ID
}

func (f *fakeStatsClient) Stats(_ context.Context, kind ports.StatsKind, id domain.ID) ([]byte, error) {
	f.kind, f.id = kind, id
	return f.body, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec, f.force = spec, force
	return nil
}

// sampleSeed: two newspapers, one editor, one subscriber on both papers who
// received the first issue only.
func sampleSeed() domain.Seed {
	return domain.Seed{
		Newspapers: []domain.SeedNewspaper{
			{
				Newspaper: domain.Newspaper{ID: 100, Name: "Times", Frequency: 7, Price: 10},
				Issues: []domain.Issue{
					{ID: 1, ReleaseDate: "2024-03-01", Pages: 40, Released: true, EditorID: 10},
					{ID: 2, ReleaseDate: "2024-03-08", Pages: 36},
				},
			},
			{
				Newspaper: domain.Newspaper{ID: 101, Name: "Monde", Frequency: 1, Price: 2.5},
			},
		},
		Editors: []domain.Editor{{ID: 10, Name: "Jane", Address: "1 Press Row"}},
		Subscribers: []domain.SeedSubscriber{
			{
				Subscriber:    domain.Subscriber{ID: 1000, Name: "Sam", Address: "42 Main St"},
				Subscriptions: []domain.ID{100, 101},
				Deliveries:    []domain.SeedDelivery{{PaperID: 100, IssueID: 1}},
			},
		},
	}
}
