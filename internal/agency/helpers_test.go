package agency

import (
	"testing"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

func mustPaper(t *testing.T, a *Agency, n domain.Newspaper) domain.Newspaper {
	t.Helper()
	if n.Name == "" {
		n.Name = "Test"
	}
	if n.Frequency == 0 {
		n.Frequency = 7
	}
	got, err := a.AddNewspaper(n)
	if err != nil {
		t.Fatalf("AddNewspaper: %v", err)
	}
	return got
}

func mustIssue(t *testing.T, a *Agency, paperID domain.ID, is domain.Issue) domain.Issue {
	t.Helper()
	got, err := a.AddIssue(paperID, is)
	if err != nil {
		t.Fatalf("AddIssue: %v", err)
	}
	return got
}

func mustEditor(t *testing.T, a *Agency, id domain.ID, name string) domain.Editor {
	t.Helper()
	got, err := a.AddEditor(domain.Editor{ID: id, Name: name, Address: "123 Elm St"})
	if err != nil {
		t.Fatalf("AddEditor: %v", err)
	}
	return got
}

func mustSubscriber(t *testing.T, a *Agency, id domain.ID, name string) domain.Subscriber {
	t.Helper()
	got, err := a.AddSubscriber(domain.Subscriber{ID: id, Name: name, Address: "42 Main St"})
	if err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	return got
}

type fixedIDs struct {
	ids []domain.ID
	idx int
}

func (f *fixedIDs) NextID() domain.ID {
	id := f.ids[f.idx%len(f.ids)]
	f.idx++
	return id
}
