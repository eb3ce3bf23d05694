package config

import (
	"strings"
	"testing"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

func TestMapSeedRequiresNames(t *testing.T) {
	cases := []struct {
		name  string
		seed  YAMLSeed
		field string
	}{
		{
			name:  "newspaper",
			seed:  YAMLSeed{Newspapers: []YAMLNewspaper{{Frequency: 1}}},
			field: "newspapers[0].name",
		},
		{
			name:  "editor",
			seed:  YAMLSeed{Editors: []YAMLPerson{{Name: " "}}},
			field: "editors[0].name",
		},
		{
			name:  "subscriber",
			seed:  YAMLSeed{Subscribers: []YAMLSubscriber{{}}},
			field: "subscribers[0].name",
		},
	}

	for _, c := range cases {
		_, err := MapSeed("seed.yaml", c.seed)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Fatalf("%s: expected %s in error, got %v", c.name, c.field, err)
		}
	}
}

func TestMapSeedRejectsBadNumbers(t *testing.T) {
	seed := YAMLSeed{Newspapers: []YAMLNewspaper{{
		Name:      "Daily",
		Frequency: 1,
		Price:     -1,
	}}}
	_, err := MapSeed("seed.yaml", seed)
	if err == nil || !strings.Contains(err.Error(), "newspapers[0].price") {
		t.Fatalf("expected price error, got %v", err)
	}

	seed.Newspapers[0].Price = 1
	seed.Newspapers[0].Issues = []YAMLIssue{{Pages: -3}}
	_, err = MapSeed("seed.yaml", seed)
	if err == nil || !strings.Contains(err.Error(), "newspapers[0].issues[0].pages") {
		t.Fatalf("expected pages error, got %v", err)
	}
}

func TestMapSeedChecksReferences(t *testing.T) {
	seed := YAMLSeed{
		Newspapers: []YAMLNewspaper{{
			ID:        1,
			Name:      "Daily",
			Frequency: 1,
			Issues:    []YAMLIssue{{ID: 5, EditorID: 9}},
		}},
	}
	_, err := MapSeed("seed.yaml", seed)
	if err == nil || !strings.Contains(err.Error(), "editor_id") {
		t.Fatalf("expected editor reference error, got %v", err)
	}

	seed.Newspapers[0].Issues[0].EditorID = 0
	seed.Subscribers = []YAMLSubscriber{{
		YAMLPerson:    YAMLPerson{Name: "Sam"},
		Subscriptions: []int64{2},
	}}
	_, err = MapSeed("seed.yaml", seed)
	if err == nil || !strings.Contains(err.Error(), "subscribers[0].subscriptions[0]") {
		t.Fatalf("expected subscription reference error, got %v", err)
	}
}

func TestMapSeedRejectsDuplicateIDs(t *testing.T) {
	paper := func(id int64, issues ...int64) YAMLNewspaper {
		n := YAMLNewspaper{ID: id, Name: "Daily", Frequency: 1}
		for _, is := range issues {
			n.Issues = append(n.Issues, YAMLIssue{ID: is})
		}
		return n
	}

	cases := []struct {
		name  string
		seed  YAMLSeed
		field string
	}{
		{
			name:  "newspaper",
			seed:  YAMLSeed{Newspapers: []YAMLNewspaper{paper(100), paper(100)}},
			field: "newspapers[1].id",
		},
		{
			name:  "issue across newspapers",
			seed:  YAMLSeed{Newspapers: []YAMLNewspaper{paper(100, 1), paper(101, 2, 1)}},
			field: "newspapers[1].issues[1].id",
		},
		{
			name:  "editor",
			seed:  YAMLSeed{Editors: []YAMLPerson{{ID: 7, Name: "A"}, {ID: 7, Name: "B"}}},
			field: "editors[1].id",
		},
		{
			name: "subscriber",
			seed: YAMLSeed{Subscribers: []YAMLSubscriber{
				{YAMLPerson: YAMLPerson{ID: 3, Name: "A"}},
				{YAMLPerson: YAMLPerson{ID: 3, Name: "B"}},
			}},
			field: "subscribers[1].id",
		},
	}

	for _, c := range cases {
		_, err := MapSeed("seed.yaml", c.seed)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected invalid config, got %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.field) || !strings.Contains(err.Error(), "duplicate id") {
			t.Fatalf("%s: expected duplicate id at %s, got %v", c.name, c.field, err)
		}
	}

	// generated IDs are not duplicates
	seed := YAMLSeed{
		Newspapers: []YAMLNewspaper{paper(0, 0, 0), paper(0)},
		Editors:    []YAMLPerson{{Name: "A"}, {Name: "B"}},
	}
	if _, err := MapSeed("seed.yaml", seed); err != nil {
		t.Fatalf("unexpected error for entries without ids: %v", err)
	}
}

func TestMapSeedTrimsNames(t *testing.T) {
	seed, err := MapSeed("seed.yaml", YAMLSeed{
		Editors: []YAMLPerson{{ID: 3, Name: "  Ed  ", Address: "x"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed.Editors[0].Name != "Ed" || seed.Editors[0].ID != 3 {
		t.Fatalf("unexpected editor: %+v", seed.Editors[0])
	}
	if seed.Newspapers == nil || seed.Subscribers == nil {
		t.Fatalf("expected empty, non-nil slices")
	}
}
