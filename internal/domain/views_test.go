package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIssueViewEditorIsNullWhenUnassigned(t *testing.T) {
	b, err := json.Marshal(Issue{ID: 1, NewspaperID: 2, Pages: 10}.View())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := m["editor"]; !ok || v != nil {
		t.Fatalf("expected editor=null, got %v (present=%v)", v, ok)
	}
	if m["released"] != false {
		t.Fatalf("expected released=false by default")
	}
}

func TestIssueViewCarriesEditorID(t *testing.T) {
	v := Issue{ID: 1, EditorID: 8}.View()
	if v.Editor == nil || *v.Editor != 8 {
		t.Fatalf("expected editor 8, got %v", v.Editor)
	}
}

func TestNewspaperSummaryOmitsLinks(t *testing.T) {
	n := Newspaper{ID: 3, Name: "Test", Frequency: 7, Price: 3.14, IssueIDs: []ID{1}}

	want := NewspaperSummary{PaperID: 3, Name: "Test", Frequency: 7, Price: 3.14}
	if diff := cmp.Diff(want, n.Summary()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	v := n.View()
	if v.Subscribers == nil || v.Editors == nil {
		t.Fatalf("expected empty lists rather than null in the detail view")
	}
}

func TestSubscriberViewNestsDetail(t *testing.T) {
	s := Subscriber{ID: 1, Name: "Ann", Address: "Elm St", NewspaperIDs: []ID{3}, DeliveredIssueIDs: []ID{4}}
	papers := []Newspaper{{ID: 3, Name: "Test"}}
	issues := []Issue{{ID: 4, NewspaperID: 3, Released: true}}

	v := s.View(papers, issues)

	if len(v.Newspapers) != 1 || v.Newspapers[0].PaperID != 3 {
		t.Fatalf("expected nested newspaper, got %+v", v.Newspapers)
	}
	if len(v.DeliveredIssues) != 1 || !v.DeliveredIssues[0].Released {
		t.Fatalf("expected nested released issue, got %+v", v.DeliveredIssues)
	}
}

func TestPatchApplyLeavesNilFields(t *testing.T) {
	name := "Renamed"
	n := NewspaperPatch{Name: &name}.Apply(Newspaper{ID: 1, Name: "Old", Price: 2})
	if n.Name != "Renamed" || n.Price != 2 {
		t.Fatalf("unexpected patch result: %+v", n)
	}

	addr := "New St"
	e := EditorPatch{Address: &addr}.Apply(Editor{Name: "E", Address: "Old St"})
	if e.Name != "E" || e.Address != "New St" {
		t.Fatalf("unexpected editor patch result: %+v", e)
	}
}
