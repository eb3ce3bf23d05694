package usecase

import (
	"fmt"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

// SeedAgency loads a seed file into an agency.
type SeedAgency struct {
	loader ports.SeedLoader
	agency ports.AgencyWriter
}

func NewSeedAgency(loader ports.SeedLoader, agency ports.AgencyWriter) *SeedAgency {
	return &SeedAgency{loader: loader, agency: agency}
}

func (uc *SeedAgency) Execute(path string) (domain.SeedSummary, error) {
	seed, err := uc.loader.LoadSeed(path)
	if err != nil {
		return domain.SeedSummary{}, err
	}
	return ApplySeed(uc.agency, seed)
}

// ApplySeed adds the seed's content in dependency order: newspapers, editors,
// issues (which may name an editor), subscribers, subscriptions, deliveries.
// Within each entity type, entries with a declared ID go first so generated
// IDs cannot take an ID declared later in the file.
// It stops at the first failure; what was added before stays added.
func ApplySeed(a ports.AgencyWriter, seed domain.Seed) (domain.SeedSummary, error) {
	var sum domain.SeedSummary

	paperIDs := make([]domain.ID, len(seed.Newspapers))
	for _, i := range declaredFirst(len(seed.Newspapers), func(i int) domain.ID { return seed.Newspapers[i].Newspaper.ID }) {
		sn := seed.Newspapers[i]
		p, err := a.AddNewspaper(sn.Newspaper)
		if err != nil {
			return sum, fmt.Errorf("seed newspaper %q: %w", sn.Newspaper.Name, err)
		}
		paperIDs[i] = p.ID
		sum.Newspapers++
	}

	for _, i := range declaredFirst(len(seed.Editors), func(i int) domain.ID { return seed.Editors[i].ID }) {
		e := seed.Editors[i]
		if _, err := a.AddEditor(e); err != nil {
			return sum, fmt.Errorf("seed editor %q: %w", e.Name, err)
		}
		sum.Editors++
	}

	// issue IDs are unique across newspapers
	type seedIssue struct {
		paper int
		issue domain.Issue
	}
	var issues []seedIssue
	for i, sn := range seed.Newspapers {
		for _, is := range sn.Issues {
			issues = append(issues, seedIssue{paper: i, issue: is})
		}
	}
	for _, k := range declaredFirst(len(issues), func(k int) domain.ID { return issues[k].issue.ID }) {
		si := issues[k]
		if _, err := a.AddIssue(paperIDs[si.paper], si.issue); err != nil {
			return sum, fmt.Errorf("seed issue of newspaper %q: %w", seed.Newspapers[si.paper].Newspaper.Name, err)
		}
		sum.Issues++
	}

	subIDs := make([]domain.ID, len(seed.Subscribers))
	for _, i := range declaredFirst(len(seed.Subscribers), func(i int) domain.ID { return seed.Subscribers[i].Subscriber.ID }) {
		ss := seed.Subscribers[i]
		s, err := a.AddSubscriber(ss.Subscriber)
		if err != nil {
			return sum, fmt.Errorf("seed subscriber %q: %w", ss.Subscriber.Name, err)
		}
		subIDs[i] = s.ID
		sum.Subscribers++
	}

	for i, ss := range seed.Subscribers {
		for _, paperID := range ss.Subscriptions {
			if _, err := a.Subscribe(subIDs[i], paperID); err != nil {
				return sum, fmt.Errorf("seed subscription of %q: %w", ss.Subscriber.Name, err)
			}
			sum.Subscriptions++
		}
		for _, d := range ss.Deliveries {
			if err := a.DeliverIssue(d.PaperID, d.IssueID, subIDs[i]); err != nil {
				return sum, fmt.Errorf("seed delivery to %q: %w", ss.Subscriber.Name, err)
			}
			sum.Deliveries++
		}
	}

	return sum, nil
}

// declaredFirst returns the indexes 0..n-1 with those whose id is set first,
// each group keeping file order.
func declaredFirst(n int, id func(int) domain.ID) []int {
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if id(i) != 0 {
			order = append(order, i)
		}
	}
	for i := 0; i < n; i++ {
		if id(i) == 0 {
			order = append(order, i)
		}
	}
	return order
}
