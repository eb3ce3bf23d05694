package domain

// Issue is one published instance of a Newspaper.
type Issue struct {
	ID          ID
	NewspaperID ID
	ReleaseDate string
	Released    bool
	Pages       int

	// EditorID is zero while no editor is assigned.
	EditorID ID

	// SubscriberIDs lists the subscribers the issue was delivered to.
	SubscriberIDs []ID
}

func (i Issue) HasEditor() bool {
	return i.EditorID != 0
}

func (i Issue) DeliveredTo(subscriberID ID) bool {
	return ContainsID(i.SubscriberIDs, subscriberID)
}

func (i Issue) Clone() Issue {
	out := i
	out.SubscriberIDs = CloneIDs(i.SubscriberIDs)
	return out
}
