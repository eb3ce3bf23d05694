package domain

// Seed is the initial content loaded into a fresh agency.
// Zero IDs are generated on load; references use the IDs declared in the seed.
type Seed struct {
	Newspapers  []SeedNewspaper
	Editors     []Editor
	Subscribers []SeedSubscriber
}

type SeedNewspaper struct {
	Newspaper Newspaper
	Issues    []Issue
}

type SeedSubscriber struct {
	Subscriber    Subscriber
	Subscriptions []ID
	Deliveries    []SeedDelivery
}

// SeedDelivery names an issue by its newspaper and issue IDs.
type SeedDelivery struct {
	PaperID ID
	IssueID ID
}

// SeedSummary counts what a seed produced.
type SeedSummary struct {
	Newspapers    int
	Issues        int
	Editors       int
	Subscribers   int
	Subscriptions int
	Deliveries    int
}
