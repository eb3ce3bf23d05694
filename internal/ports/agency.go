package ports

import "github.com/VakaruGIT/NSMS/internal/domain"

// AgencyWriter is the subset of the registry needed to load content into it.
type AgencyWriter interface {
	AddNewspaper(n domain.Newspaper) (domain.Newspaper, error)
	AddIssue(paperID domain.ID, is domain.Issue) (domain.Issue, error)
	AddEditor(e domain.Editor) (domain.Editor, error)
	AddSubscriber(s domain.Subscriber) (domain.Subscriber, error)
	SetEditorToIssue(editorID, issueID, paperID domain.ID) error
	Subscribe(subscriberID, paperID domain.ID) (domain.Subscriber, error)
	DeliverIssue(paperID, issueID, subscriberID domain.ID) error
}

// AgencyReader is the read side used for reporting.
type AgencyReader interface {
	Newspapers() []domain.Newspaper
	Subscribers() []domain.Subscriber
	Editors() []domain.Editor
	Issues() []domain.Issue
	NewspaperIssues(paperID domain.ID) ([]domain.Issue, error)
	SubscriberStats(subscriberID domain.ID) (domain.SubscriberStats, error)
	MissingIssues(subscriberID domain.ID) ([]domain.Issue, error)
}
