package domain

// Newspaper is a publication sold on a monthly subscription.
// Links to issues, subscribers and editors are identifiers resolved through the agency.
type Newspaper struct {
	ID        ID
	Name      string
	Frequency int     // days between issues
	Price     float64 // monthly price

	IssueIDs      []ID
	SubscriberIDs []ID
	EditorIDs     []ID
}

// NewspaperPatch carries a partial update. Nil fields are left unchanged.
type NewspaperPatch struct {
	Name      *string
	Frequency *int
	Price     *float64
}

func (n Newspaper) SubscriberCount() int {
	return len(n.SubscriberIDs)
}

// MonthlyRevenue is the price times the number of subscribers.
func (n Newspaper) MonthlyRevenue() float64 {
	return float64(n.SubscriberCount()) * n.Price
}

// Clone returns a deep copy.
func (n Newspaper) Clone() Newspaper {
	out := n
	out.IssueIDs = CloneIDs(n.IssueIDs)
	out.SubscriberIDs = CloneIDs(n.SubscriberIDs)
	out.EditorIDs = CloneIDs(n.EditorIDs)
	return out
}

// Apply returns a copy with the patch applied.
func (p NewspaperPatch) Apply(n Newspaper) Newspaper {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Frequency != nil {
		n.Frequency = *p.Frequency
	}
	if p.Price != nil {
		n.Price = *p.Price
	}
	return n
}
