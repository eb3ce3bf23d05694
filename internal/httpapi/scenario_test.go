package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewspaperLifecycle(t *testing.T) {
	at := newAPITest(t)

	doc := at.must(http.StatusCreated, http.MethodPost, "/newspaper", map[string]any{"name": "Test", "frequency": 7, "price": 3.14})
	paperID := at.id(doc, "$.newspaper.paper_id")
	if at.get(doc, "$.newspaper.name") != "Test" || at.get(doc, "$.newspaper.price") != 3.14 {
		t.Fatalf("unexpected newspaper %v", doc)
	}
	paperPath := fmt.Sprintf("/newspaper/%d", paperID)

	doc = at.must(http.StatusCreated, http.MethodPost, paperPath+"/issue", map[string]any{"release_date": "2024-01-01", "page": 10})
	issueID := at.id(doc, "$.issue.issue_id")
	if at.get(doc, "$.issue.released") != false || at.get(doc, "$.issue.editor") != nil {
		t.Fatalf("new issue should be unreleased without editor: %v", doc)
	}
	issuePath := fmt.Sprintf("%s/issue/%d", paperPath, issueID)

	doc = at.must(http.StatusCreated, http.MethodPost, "/editor", map[string]any{"name": "Ed", "address": "Main St"})
	editorID := at.id(doc, "$.editor.editor_id")

	doc = at.must(http.StatusCreated, http.MethodPost, "/subscriber", map[string]any{"name": "Sue", "address": "Elm St"})
	subID := at.id(doc, "$.subscriber.subscriber_id")

	doc = at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/editor/%d", issuePath, editorID), nil)
	if at.id(doc, "$.editor_id") != editorID {
		t.Fatalf("unexpected assign response %v", doc)
	}

	doc = at.must(http.StatusOK, http.MethodPost, issuePath+"/release", nil)
	if at.get(doc, "$.issue.released") != true {
		t.Fatalf("expected released issue, got %v", doc)
	}
	// releasing twice is harmless
	at.must(http.StatusOK, http.MethodPost, issuePath+"/release", nil)

	at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/deliver/%d", issuePath, subID), nil)

	doc = at.must(http.StatusOK, http.MethodGet, paperPath+"/stats", nil)
	if at.get(doc, "$.stats.number_subscribers") != float64(0) {
		t.Fatalf("delivery must not count as subscription: %v", doc)
	}

	doc = at.must(http.StatusOK, http.MethodGet, issuePath, nil)
	if at.get(doc, "$.issue.released") != true {
		t.Fatalf("expected released issue, got %v", doc)
	}
	if at.id(doc, "$.issue.editor") != editorID {
		t.Fatalf("expected editor %d, got %v", editorID, doc)
	}
	if diff := cmp.Diff([]any{float64(subID)}, at.get(doc, "$.issue.subscribers")); diff != "" {
		t.Fatalf("issue subscribers mismatch (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodGet, paperPath, nil)
	if diff := cmp.Diff([]any{float64(editorID)}, at.get(doc, "$.newspaper.editors")); diff != "" {
		t.Fatalf("newspaper editors mismatch (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodGet, fmt.Sprintf("/subscriber/%d", subID), nil)
	if at.id(doc, "$.subscriber.delivered_issues[0].issue_id") != issueID {
		t.Fatalf("expected delivered issue in subscriber view: %v", doc)
	}
}

func TestSubscriptionStatsAndMissingIssues(t *testing.T) {
	at := newAPITest(t)

	doc := at.must(http.StatusCreated, http.MethodPost, "/newspaper", map[string]any{"name": "Weekly", "frequency": 7, "price": 2.5})
	paperID := at.id(doc, "$.newspaper.paper_id")
	paperPath := fmt.Sprintf("/newspaper/%d", paperID)

	first := at.id(at.must(http.StatusCreated, http.MethodPost, paperPath+"/issue", nil), "$.issue.issue_id")
	second := at.id(at.must(http.StatusCreated, http.MethodPost, paperPath+"/issue", nil), "$.issue.issue_id")

	subID := at.id(at.must(http.StatusCreated, http.MethodPost, "/subscriber", map[string]any{"name": "Sam"}), "$.subscriber.subscriber_id")
	subPath := fmt.Sprintf("/subscriber/%d", subID)

	doc = at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/subscribe/%d", subPath, paperID), nil)
	if at.id(doc, "$.subscriber.newspapers[0].paper_id") != paperID {
		t.Fatalf("expected nested newspaper after subscribe: %v", doc)
	}

	at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/issue/%d/deliver/%d", paperPath, first, subID), nil)

	doc = at.must(http.StatusOK, http.MethodGet, subPath+"/missingissues", nil)
	if diff := cmp.Diff([]any{float64(second)}, at.get(doc, "$.missing_issues[*].issue_id")); diff != "" {
		t.Fatalf("missing issues mismatch (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodGet, subPath+"/stats", nil)
	if at.get(doc, "$.stats.number_of_subscriptions") != float64(1) || at.get(doc, "$.stats.number_of_issues") != float64(1) {
		t.Fatalf("unexpected subscriber stats %v", doc)
	}

	doc = at.must(http.StatusOK, http.MethodGet, paperPath+"/stats", nil)
	if at.get(doc, "$.stats.number_subscribers") != float64(1) {
		t.Fatalf("unexpected newspaper stats %v", doc)
	}
}

func TestDeleteEditorReassignsIssues(t *testing.T) {
	at := newAPITest(t)

	paperID := at.id(at.must(http.StatusCreated, http.MethodPost, "/newspaper", map[string]any{"name": "Daily", "frequency": 1, "price": 1}), "$.newspaper.paper_id")
	paperPath := fmt.Sprintf("/newspaper/%d", paperID)
	first := at.id(at.must(http.StatusCreated, http.MethodPost, paperPath+"/issue", nil), "$.issue.issue_id")
	second := at.id(at.must(http.StatusCreated, http.MethodPost, paperPath+"/issue", nil), "$.issue.issue_id")

	leaving := at.id(at.must(http.StatusCreated, http.MethodPost, "/editor", map[string]any{"name": "A"}), "$.editor.editor_id")
	staying := at.id(at.must(http.StatusCreated, http.MethodPost, "/editor", map[string]any{"name": "B"}), "$.editor.editor_id")

	at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/issue/%d/editor/%d", paperPath, first, leaving), nil)
	at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("%s/issue/%d/editor/%d", paperPath, second, staying), nil)

	doc := at.must(http.StatusOK, http.MethodGet, fmt.Sprintf("/editor/%d/issues", leaving), nil)
	if diff := cmp.Diff([]any{float64(first)}, at.get(doc, "$.issues")); diff != "" {
		t.Fatalf("editor issues mismatch (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodDelete, fmt.Sprintf("/editor/%d", leaving), nil)
	want := map[string]any{fmt.Sprint(first): float64(staying)}
	if diff := cmp.Diff(want, at.get(doc, "$.reassigned")); diff != "" {
		t.Fatalf("reassigned mismatch (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodGet, fmt.Sprintf("%s/issue/%d", paperPath, first), nil)
	if at.id(doc, "$.issue.editor") != staying {
		t.Fatalf("expected issue to move to editor %d: %v", staying, doc)
	}
	at.must(http.StatusNotFound, http.MethodGet, fmt.Sprintf("/editor/%d", leaving), nil)
}

func TestUpdateAndDelete(t *testing.T) {
	at := newAPITest(t)

	paperID := at.id(at.must(http.StatusCreated, http.MethodPost, "/newspaper", map[string]any{"name": "Old", "frequency": 1, "price": 1}), "$.newspaper.paper_id")
	paperPath := fmt.Sprintf("/newspaper/%d", paperID)

	doc := at.must(http.StatusOK, http.MethodPost, paperPath, map[string]any{"name": "New"})
	if at.get(doc, "$.newspaper.name") != "New" || at.get(doc, "$.newspaper.price") != float64(1) {
		t.Fatalf("partial update should keep other fields: %v", doc)
	}
	at.must(http.StatusBadRequest, http.MethodPost, paperPath, map[string]any{"price": -1})

	subID := at.id(at.must(http.StatusCreated, http.MethodPost, "/subscriber", map[string]any{"name": "S"}), "$.subscriber.subscriber_id")
	at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("/subscriber/%d/subscribe/%d", subID, paperID), nil)

	at.must(http.StatusOK, http.MethodDelete, paperPath, nil)
	at.must(http.StatusNotFound, http.MethodGet, paperPath, nil)
	at.must(http.StatusNotFound, http.MethodGet, paperPath+"/issue", nil)

	doc = at.must(http.StatusOK, http.MethodGet, fmt.Sprintf("/subscriber/%d", subID), nil)
	if diff := cmp.Diff([]any{}, at.get(doc, "$.subscriber.newspapers")); diff != "" {
		t.Fatalf("subscription should be dropped with the newspaper (-want +got):\n%s", diff)
	}

	doc = at.must(http.StatusOK, http.MethodPost, fmt.Sprintf("/subscriber/%d", subID), map[string]any{"address": "Oak"})
	if at.get(doc, "$.subscriber.name") != "S" || at.get(doc, "$.subscriber.address") != "Oak" {
		t.Fatalf("unexpected subscriber after update: %v", doc)
	}
	at.must(http.StatusOK, http.MethodDelete, fmt.Sprintf("/subscriber/%d", subID), nil)
	at.must(http.StatusNotFound, http.MethodGet, fmt.Sprintf("/subscriber/%d/stats", subID), nil)
}

func TestEditorListReturnsSummaries(t *testing.T) {
	at := newAPITest(t)
	at.must(http.StatusCreated, http.MethodPost, "/editor", map[string]any{"name": "Ed", "address": "Main St"})

	doc := at.must(http.StatusOK, http.MethodGet, "/editor/", nil)
	want := []any{map[string]any{"editor_id": float64(1), "name": "Ed", "address": "Main St"}}
	if diff := cmp.Diff(want, at.get(doc, "$.editors")); diff != "" {
		t.Fatalf("editor list (-want +got):\n%s", diff)
	}
}
