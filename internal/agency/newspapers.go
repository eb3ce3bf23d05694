package agency

import (
	"github.com/VakaruGIT/NSMS/internal/domain"
)

// AddNewspaper registers a newspaper. A zero ID is replaced by a generated one;
// an ID that is already registered fails with a duplicate_key error.
// Links passed in are ignored: a new newspaper has no issues, subscribers or editors.
func (a *Agency) AddNewspaper(n domain.Newspaper) (domain.Newspaper, error) {
	const op = "agency.add_newspaper"
	if err := validateID(op, "paper_id", n.ID); err != nil {
		return domain.Newspaper{}, err
	}
	if err := validateNewspaper(op, n); err != nil {
		return domain.Newspaper{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if n.ID == 0 {
		id, err := a.newIDLocked(op, func(id domain.ID) bool {
			_, ok := a.newspapers[id]
			return ok
		})
		if err != nil {
			return domain.Newspaper{}, err
		}
		n.ID = id
	} else if _, ok := a.newspapers[n.ID]; ok {
		return domain.Newspaper{}, domain.DuplicateKey(op, "newspaper", n.ID)
	}

	stored := domain.Newspaper{
		ID:            n.ID,
		Name:          n.Name,
		Frequency:     n.Frequency,
		Price:         n.Price,
		IssueIDs:      []domain.ID{},
		SubscriberIDs: []domain.ID{},
		EditorIDs:     []domain.ID{},
	}
	a.newspapers[stored.ID] = &stored
	a.paperOrder = append(a.paperOrder, stored.ID)

	a.log.Debug("agency.newspaper.added", "paper_id", stored.ID, "name", stored.Name)
	return stored.Clone(), nil
}

// Newspaper returns the newspaper with the given ID; ok is false when absent.
func (a *Agency) Newspaper(id domain.ID) (domain.Newspaper, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p, ok := a.newspapers[id]
	if !ok {
		return domain.Newspaper{}, false
	}
	return p.Clone(), true
}

// Newspapers lists every newspaper in insertion order.
func (a *Agency) Newspapers() []domain.Newspaper {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Newspaper, 0, len(a.paperOrder))
	for _, id := range a.paperOrder {
		out = append(out, a.newspapers[id].Clone())
	}
	return out
}

func (a *Agency) UpdateNewspaper(id domain.ID, patch domain.NewspaperPatch) (domain.Newspaper, error) {
	const op = "agency.update_newspaper"

	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.paperLocked(op, id)
	if err != nil {
		return domain.Newspaper{}, err
	}

	updated := patch.Apply(*p)
	if err := validateNewspaper(op, updated); err != nil {
		return domain.Newspaper{}, err
	}
	*p = updated

	a.log.Debug("agency.newspaper.updated", "paper_id", id)
	return p.Clone(), nil
}

// RemoveNewspaper removes the newspaper together with the issues it owns, and
// drops it from the subscriptions and editor links that referenced it.
func (a *Agency) RemoveNewspaper(id domain.ID) error {
	const op = "agency.remove_newspaper"

	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.paperLocked(op, id)
	if err != nil {
		return err
	}

	for _, issueID := range p.IssueIDs {
		is, ok := a.issues[issueID]
		if !ok {
			continue
		}
		for _, subID := range is.SubscriberIDs {
			if s, ok := a.subscribers[subID]; ok {
				s.DeliveredIssueIDs = domain.RemoveID(s.DeliveredIssueIDs, issueID)
			}
		}
		delete(a.issues, issueID)
		a.issueOrder = domain.RemoveID(a.issueOrder, issueID)
	}

	for _, subID := range p.SubscriberIDs {
		if s, ok := a.subscribers[subID]; ok {
			s.NewspaperIDs = domain.RemoveID(s.NewspaperIDs, id)
		}
	}
	for _, edID := range p.EditorIDs {
		if e, ok := a.editors[edID]; ok {
			e.NewspaperIDs = domain.RemoveID(e.NewspaperIDs, id)
		}
	}

	delete(a.newspapers, id)
	a.paperOrder = domain.RemoveID(a.paperOrder, id)

	a.log.Debug("agency.newspaper.removed", "paper_id", id, "issues", len(p.IssueIDs))
	return nil
}

// NewspaperStats reports the subscriber count and revenue of a newspaper.
func (a *Agency) NewspaperStats(id domain.ID) (domain.NewspaperStats, error) {
	const op = "agency.newspaper_stats"

	a.mu.RLock()
	defer a.mu.RUnlock()

	p, err := a.paperLocked(op, id)
	if err != nil {
		return domain.NewspaperStats{}, err
	}
	return domain.NewNewspaperStats(*p), nil
}
