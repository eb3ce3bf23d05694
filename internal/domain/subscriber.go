package domain

// Subscriber receives issues of the newspapers it subscribed to.
type Subscriber struct {
	ID      ID
	Name    string
	Address string

	NewspaperIDs      []ID
	DeliveredIssueIDs []ID
}

type SubscriberPatch struct {
	Name    *string
	Address *string
}

func (s Subscriber) SubscriptionCount() int {
	return len(s.NewspaperIDs)
}

func (s Subscriber) DeliveredCount() int {
	return len(s.DeliveredIssueIDs)
}

func (s Subscriber) Clone() Subscriber {
	out := s
	out.NewspaperIDs = CloneIDs(s.NewspaperIDs)
	out.DeliveredIssueIDs = CloneIDs(s.DeliveredIssueIDs)
	return out
}

func (p SubscriberPatch) Apply(s Subscriber) Subscriber {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	return s
}
