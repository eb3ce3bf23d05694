package agency

import (
	"github.com/VakaruGIT/NSMS/internal/domain"
)

func (a *Agency) AddSubscriber(s domain.Subscriber) (domain.Subscriber, error) {
	const op = "agency.add_subscriber"
	if err := validateID(op, "subscriber_id", s.ID); err != nil {
		return domain.Subscriber{}, err
	}
	if err := validatePerson(op, "subscriber", s.Name); err != nil {
		return domain.Subscriber{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if s.ID == 0 {
		id, err := a.newIDLocked(op, func(id domain.ID) bool {
			_, ok := a.subscribers[id]
			return ok
		})
		if err != nil {
			return domain.Subscriber{}, err
		}
		s.ID = id
	} else if _, ok := a.subscribers[s.ID]; ok {
		return domain.Subscriber{}, domain.DuplicateKey(op, "subscriber", s.ID)
	}

	stored := domain.Subscriber{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		NewspaperIDs:      []domain.ID{},
		DeliveredIssueIDs: []domain.ID{},
	}
	a.subscribers[stored.ID] = &stored
	a.subscriberOrder = append(a.subscriberOrder, stored.ID)

	a.log.Debug("agency.subscriber.added", "subscriber_id", stored.ID)
	return stored.Clone(), nil
}

func (a *Agency) Subscriber(id domain.ID) (domain.Subscriber, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.subscribers[id]
	if !ok {
		return domain.Subscriber{}, false
	}
	return s.Clone(), true
}

func (a *Agency) Subscribers() []domain.Subscriber {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Subscriber, 0, len(a.subscriberOrder))
	for _, id := range a.subscriberOrder {
		out = append(out, a.subscribers[id].Clone())
	}
	return out
}

func (a *Agency) UpdateSubscriber(id domain.ID, patch domain.SubscriberPatch) (domain.Subscriber, error) {
	const op = "agency.update_subscriber"

	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.subscriberLocked(op, id)
	if err != nil {
		return domain.Subscriber{}, err
	}
	updated := patch.Apply(*s)
	if err := validatePerson(op, "subscriber", updated.Name); err != nil {
		return domain.Subscriber{}, err
	}
	*s = updated

	a.log.Debug("agency.subscriber.updated", "subscriber_id", id)
	return s.Clone(), nil
}

// RemoveSubscriber removes the subscriber from the registry, from the
// subscriber lists of its newspapers and from the recipients of its issues.
func (a *Agency) RemoveSubscriber(id domain.ID) error {
	const op = "agency.remove_subscriber"

	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.subscriberLocked(op, id)
	if err != nil {
		return err
	}

	for _, paperID := range s.NewspaperIDs {
		if p, ok := a.newspapers[paperID]; ok {
			p.SubscriberIDs = domain.RemoveID(p.SubscriberIDs, id)
		}
	}
	for _, issueID := range s.DeliveredIssueIDs {
		if is, ok := a.issues[issueID]; ok {
			is.SubscriberIDs = domain.RemoveID(is.SubscriberIDs, id)
		}
	}

	delete(a.subscribers, id)
	a.subscriberOrder = domain.RemoveID(a.subscriberOrder, id)

	a.log.Debug("agency.subscriber.removed", "subscriber_id", id)
	return nil
}

// Subscribe links subscriber and newspaper both ways. Subscribing twice is a no-op.
func (a *Agency) Subscribe(subscriberID, paperID domain.ID) (domain.Subscriber, error) {
	const op = "agency.subscribe"

	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.subscriberLocked(op, subscriberID)
	if err != nil {
		return domain.Subscriber{}, err
	}
	p, err := a.paperLocked(op, paperID)
	if err != nil {
		return domain.Subscriber{}, err
	}

	s.NewspaperIDs = domain.AppendUnique(s.NewspaperIDs, paperID)
	p.SubscriberIDs = domain.AppendUnique(p.SubscriberIDs, subscriberID)

	a.log.Debug("agency.subscriber.subscribed", "subscriber_id", subscriberID, "paper_id", paperID)
	return s.Clone(), nil
}

// SubscriberStats reports subscriptions, costs and deliveries of a subscriber.
func (a *Agency) SubscriberStats(id domain.ID) (domain.SubscriberStats, error) {
	const op = "agency.subscriber_stats"

	a.mu.RLock()
	defer a.mu.RUnlock()

	s, err := a.subscriberLocked(op, id)
	if err != nil {
		return domain.SubscriberStats{}, err
	}
	return domain.NewSubscriberStats(*s, a.papersOfLocked(s)), nil
}

// MissingIssues lists the issues of subscribed newspapers that were never
// delivered to the subscriber.
func (a *Agency) MissingIssues(id domain.ID) ([]domain.Issue, error) {
	const op = "agency.missing_issues"

	a.mu.RLock()
	defer a.mu.RUnlock()

	s, err := a.subscriberLocked(op, id)
	if err != nil {
		return nil, err
	}

	papers := a.papersOfLocked(s)
	byPaper := make(map[domain.ID][]domain.Issue, len(papers))
	for _, p := range papers {
		byPaper[p.ID] = a.issuesOfLocked(a.newspapers[p.ID])
	}
	return domain.MissingIssues(*s, papers, byPaper), nil
}

func (a *Agency) papersOfLocked(s *domain.Subscriber) []domain.Newspaper {
	out := make([]domain.Newspaper, 0, len(s.NewspaperIDs))
	for _, id := range s.NewspaperIDs {
		if p, ok := a.newspapers[id]; ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (a *Agency) deliveredOfLocked(s *domain.Subscriber) []domain.Issue {
	out := make([]domain.Issue, 0, len(s.DeliveredIssueIDs))
	for _, id := range s.DeliveredIssueIDs {
		if is, ok := a.issues[id]; ok {
			out = append(out, is.Clone())
		}
	}
	return out
}

// SubscriberView resolves the subscriber's newspapers and delivered issues
// into the nested detail shape.
func (a *Agency) SubscriberView(id domain.ID) (domain.SubscriberView, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.subscribers[id]
	if !ok {
		return domain.SubscriberView{}, false
	}
	return s.View(a.papersOfLocked(s), a.deliveredOfLocked(s)), true
}
