package domain

const monthsPerYear = 12

// AnnualFromMonthly derives a yearly figure from a monthly one.
func AnnualFromMonthly(monthly float64) float64 {
	return monthly * monthsPerYear
}

// MonthlyCost is the sum of the prices of the given newspapers.
func MonthlyCost(papers []Newspaper) float64 {
	var total float64
	for _, p := range papers {
		total += p.Price
	}
	return total
}

// MissingIssues returns, for each subscribed newspaper in order, the issues the
// subscriber has not received. papers must be the subscriber's newspapers and
// issuesByPaper their issues in publication order.
func MissingIssues(sub Subscriber, papers []Newspaper, issuesByPaper map[ID][]Issue) []Issue {
	out := []Issue{}
	for _, p := range papers {
		for _, is := range issuesByPaper[p.ID] {
			if !ContainsID(sub.DeliveredIssueIDs, is.ID) {
				out = append(out, is)
			}
		}
	}
	return out
}

// NewspaperStats summarizes subscriptions and revenue of a newspaper.
type NewspaperStats struct {
	NewspaperID    ID
	Subscribers    int
	MonthlyRevenue float64
	AnnualRevenue  float64
}

// SubscriberStats summarizes the subscriptions of a subscriber.
type SubscriberStats struct {
	SubscriberID    ID
	Subscriptions   int
	MonthlyCost     float64
	AnnualCost      float64
	DeliveredIssues int
}

func NewNewspaperStats(n Newspaper) NewspaperStats {
	monthly := n.MonthlyRevenue()
	return NewspaperStats{
		NewspaperID:    n.ID,
		Subscribers:    n.SubscriberCount(),
		MonthlyRevenue: monthly,
		AnnualRevenue:  AnnualFromMonthly(monthly),
	}
}

func NewSubscriberStats(s Subscriber, papers []Newspaper) SubscriberStats {
	monthly := MonthlyCost(papers)
	return SubscriberStats{
		SubscriberID:    s.ID,
		Subscriptions:   s.SubscriptionCount(),
		MonthlyCost:     monthly,
		AnnualCost:      AnnualFromMonthly(monthly),
		DeliveredIssues: s.DeliveredCount(),
	}
}
