package usecase

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VakaruGIT/NSMS/internal/agency"
	"github.com/VakaruGIT/NSMS/internal/domain"
)

func TestSeedAgency_AppliesEverything(t *testing.T) {
	a := agency.New()
	loader := &fakeSeedLoader{seed: sampleSeed()}

	sum, err := NewSeedAgency(loader, a).Execute("seed.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if loader.path != "seed.yaml" {
		t.Fatalf("expected loader to receive path, got %q", loader.path)
	}

	want := domain.SeedSummary{Newspapers: 2, Issues: 2, Editors: 1, Subscribers: 1, Subscriptions: 2, Deliveries: 1}
	if diff := cmp.Diff(want, sum); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}

	p, ok := a.Newspaper(100)
	if !ok {
		t.Fatalf("expected newspaper 100")
	}
	if diff := cmp.Diff([]domain.ID{1, 2}, p.IssueIDs); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]domain.ID{10}, p.EditorIDs); diff != "" {
		t.Fatalf("editors (-want +got):\n%s", diff)
	}

	is, _ := a.Issue(1)
	if diff := cmp.Diff([]domain.ID{1000}, is.SubscriberIDs); diff != "" {
		t.Fatalf("recipients (-want +got):\n%s", diff)
	}
}

func TestSeedAgency_GeneratesMissingIDs(t *testing.T) {
	a := agency.New()
	seed := domain.Seed{Newspapers: []domain.SeedNewspaper{{
		Newspaper: domain.Newspaper{Name: "Anon", Frequency: 1},
		Issues:    []domain.Issue{{Pages: 2}},
	}}}

	if _, err := ApplySeed(a, seed); err != nil {
		t.Fatalf("ApplySeed error: %v", err)
	}
	papers := a.Newspapers()
	if len(papers) != 1 || papers[0].ID == 0 || len(papers[0].IssueIDs) != 1 {
		t.Fatalf("unexpected newspapers %+v", papers)
	}
}

func TestSeedAgency_LoaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewSeedAgency(&fakeSeedLoader{err: boom}, agency.New()).Execute("seed.yaml")
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestSeedAgency_StopsAtDuplicate(t *testing.T) {
	seed := sampleSeed()
	seed.Newspapers[1].Newspaper.ID = 100

	sum, err := ApplySeed(agency.New(), seed)
	if !domain.IsKind(err, domain.KindDuplicateKey) {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
	if sum.Newspapers != 1 {
		t.Fatalf("expected partial summary, got %+v", sum)
	}
}

func TestSeedAgency_GeneratedIDsSkipDeclaredOnes(t *testing.T) {
	a := agency.New()
	seed := domain.Seed{
		Newspapers: []domain.SeedNewspaper{
			{
				Newspaper: domain.Newspaper{Name: "Anon", Frequency: 1},
				Issues:    []domain.Issue{{Pages: 4}},
			},
			{
				Newspaper: domain.Newspaper{ID: 1, Name: "Declared", Frequency: 7},
				Issues:    []domain.Issue{{ID: 1, Pages: 8}},
			},
		},
		Editors: []domain.Editor{{Name: "Anon Ed"}, {ID: 1, Name: "Declared Ed"}},
		Subscribers: []domain.SeedSubscriber{
			{Subscriber: domain.Subscriber{Name: "Anon Sub"}, Subscriptions: []domain.ID{1}},
			{Subscriber: domain.Subscriber{ID: 1, Name: "Declared Sub"}, Deliveries: []domain.SeedDelivery{{PaperID: 1, IssueID: 1}}},
		},
	}

	sum, err := ApplySeed(a, seed)
	if err != nil {
		t.Fatalf("ApplySeed error: %v", err)
	}
	want := domain.SeedSummary{Newspapers: 2, Issues: 2, Editors: 2, Subscribers: 2, Subscriptions: 1, Deliveries: 1}
	if diff := cmp.Diff(want, sum); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}

	declared, ok := a.Newspaper(1)
	if !ok || declared.Name != "Declared" {
		t.Fatalf("expected declared newspaper under ID 1, got %+v", declared)
	}
	if diff := cmp.Diff([]domain.ID{1}, declared.IssueIDs); diff != "" {
		t.Fatalf("declared issues (-want +got):\n%s", diff)
	}
	if e, _ := a.Editor(1); e.Name != "Declared Ed" {
		t.Fatalf("expected declared editor under ID 1, got %+v", e)
	}
	if s, _ := a.Subscriber(1); s.Name != "Declared Sub" || len(s.DeliveredIssueIDs) != 1 {
		t.Fatalf("expected declared subscriber under ID 1, got %+v", s)
	}

	for _, p := range a.Newspapers() {
		if p.Name == "Anon" && (p.ID == 1 || len(p.IssueIDs) != 1 || p.IssueIDs[0] == 1) {
			t.Fatalf("generated IDs collided with declared ones: %+v", p)
		}
	}
}
