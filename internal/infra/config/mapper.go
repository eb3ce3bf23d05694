package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

// MapSeed converts the YAML document into domain values. It checks the shape
// of each entry and that references point at entries declared in the same
// file; linking itself is left to the agency.
func MapSeed(path string, ys YAMLSeed) (domain.Seed, error) {
	seed := domain.Seed{
		Newspapers:  make([]domain.SeedNewspaper, 0, len(ys.Newspapers)),
		Editors:     make([]domain.Editor, 0, len(ys.Editors)),
		Subscribers: make([]domain.SeedSubscriber, 0, len(ys.Subscribers)),
	}

	editors := map[int64]bool{}
	for i, e := range ys.Editors {
		field := fmt.Sprintf("editors[%d]", i)
		if err := checkPerson(path, field, e); err != nil {
			return domain.Seed{}, err
		}
		if editors[e.ID] {
			return domain.Seed{}, invalidField(path, field+".id", fmt.Sprintf("duplicate id %d", e.ID))
		}
		if e.ID != 0 {
			editors[e.ID] = true
		}
		seed.Editors = append(seed.Editors, domain.Editor{
			ID:      domain.ID(e.ID),
			Name:    strings.TrimSpace(e.Name),
			Address: e.Address,
		})
	}

	issuesByPaper := map[int64]map[int64]bool{}
	// issue IDs are unique across newspapers
	allIssues := map[int64]bool{}
	for i, n := range ys.Newspapers {
		field := fmt.Sprintf("newspapers[%d]", i)
		if n.ID < 0 {
			return domain.Seed{}, invalidField(path, field+".id", "must not be negative")
		}
		if _, dup := issuesByPaper[n.ID]; dup && n.ID != 0 {
			return domain.Seed{}, invalidField(path, field+".id", fmt.Sprintf("duplicate id %d", n.ID))
		}
		if strings.TrimSpace(n.Name) == "" {
			return domain.Seed{}, invalidField(path, field+".name", "newspaper name is required")
		}
		if n.Frequency <= 0 {
			return domain.Seed{}, invalidField(path, field+".frequency", "must be positive")
		}
		if n.Price < 0 || math.IsNaN(n.Price) || math.IsInf(n.Price, 0) {
			return domain.Seed{}, invalidField(path, field+".price", "must be a finite, non-negative amount")
		}

		sn := domain.SeedNewspaper{
			Newspaper: domain.Newspaper{
				ID:        domain.ID(n.ID),
				Name:      strings.TrimSpace(n.Name),
				Frequency: n.Frequency,
				Price:     n.Price,
			},
			Issues: make([]domain.Issue, 0, len(n.Issues)),
		}
		declared := map[int64]bool{}
		for j, is := range n.Issues {
			ifield := fmt.Sprintf("%s.issues[%d]", field, j)
			if is.ID < 0 {
				return domain.Seed{}, invalidField(path, ifield+".id", "must not be negative")
			}
			if is.Pages < 0 {
				return domain.Seed{}, invalidField(path, ifield+".pages", "must not be negative")
			}
			if is.EditorID != 0 && !editors[is.EditorID] {
				return domain.Seed{}, invalidField(path, ifield+".editor_id", fmt.Sprintf("unknown editor %d", is.EditorID))
			}
			if allIssues[is.ID] {
				return domain.Seed{}, invalidField(path, ifield+".id", fmt.Sprintf("duplicate id %d", is.ID))
			}
			if is.ID != 0 {
				declared[is.ID] = true
				allIssues[is.ID] = true
			}
			sn.Issues = append(sn.Issues, domain.Issue{
				ID:          domain.ID(is.ID),
				ReleaseDate: is.ReleaseDate,
				Released:    is.Released,
				Pages:       is.Pages,
				EditorID:    domain.ID(is.EditorID),
			})
		}
		if n.ID != 0 {
			issuesByPaper[n.ID] = declared
		}
		seed.Newspapers = append(seed.Newspapers, sn)
	}

	subscribers := map[int64]bool{}
	for i, s := range ys.Subscribers {
		field := fmt.Sprintf("subscribers[%d]", i)
		if err := checkPerson(path, field, s.YAMLPerson); err != nil {
			return domain.Seed{}, err
		}
		if subscribers[s.ID] {
			return domain.Seed{}, invalidField(path, field+".id", fmt.Sprintf("duplicate id %d", s.ID))
		}
		if s.ID != 0 {
			subscribers[s.ID] = true
		}

		ss := domain.SeedSubscriber{
			Subscriber: domain.Subscriber{
				ID:      domain.ID(s.ID),
				Name:    strings.TrimSpace(s.Name),
				Address: s.Address,
			},
			Subscriptions: make([]domain.ID, 0, len(s.Subscriptions)),
			Deliveries:    make([]domain.SeedDelivery, 0, len(s.Deliveries)),
		}
		for j, paperID := range s.Subscriptions {
			if _, ok := issuesByPaper[paperID]; !ok {
				return domain.Seed{}, invalidField(path, fmt.Sprintf("%s.subscriptions[%d]", field, j), fmt.Sprintf("unknown newspaper %d", paperID))
			}
			ss.Subscriptions = append(ss.Subscriptions, domain.ID(paperID))
		}
		for j, d := range s.Deliveries {
			dfield := fmt.Sprintf("%s.deliveries[%d]", field, j)
			issues, ok := issuesByPaper[d.PaperID]
			if !ok {
				return domain.Seed{}, invalidField(path, dfield+".paper_id", fmt.Sprintf("unknown newspaper %d", d.PaperID))
			}
			if !issues[d.IssueID] {
				return domain.Seed{}, invalidField(path, dfield+".issue_id", fmt.Sprintf("unknown issue %d of newspaper %d", d.IssueID, d.PaperID))
			}
			ss.Deliveries = append(ss.Deliveries, domain.SeedDelivery{
				PaperID: domain.ID(d.PaperID),
				IssueID: domain.ID(d.IssueID),
			})
		}
		seed.Subscribers = append(seed.Subscribers, ss)
	}

	return seed, nil
}

func checkPerson(path, field string, p YAMLPerson) error {
	if p.ID < 0 {
		return invalidField(path, field+".id", "must not be negative")
	}
	if strings.TrimSpace(p.Name) == "" {
		return invalidField(path, field+".name", "name is required")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
