package agency

import (
	"github.com/VakaruGIT/NSMS/internal/domain"
)

// AddIssue registers an issue on exactly one newspaper. A zero ID is generated.
// When the issue names an editor, the editor must exist and is linked as by SetEditorToIssue.
func (a *Agency) AddIssue(paperID domain.ID, is domain.Issue) (domain.Issue, error) {
	const op = "agency.add_issue"
	if err := validateID(op, "issue_id", is.ID); err != nil {
		return domain.Issue{}, err
	}
	if err := validateIssue(op, is); err != nil {
		return domain.Issue{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.paperLocked(op, paperID)
	if err != nil {
		return domain.Issue{}, err
	}

	var editor *domain.Editor
	if is.EditorID != 0 {
		if editor, err = a.editorLocked(op, is.EditorID); err != nil {
			return domain.Issue{}, err
		}
	}

	if is.ID == 0 {
		id, err := a.newIDLocked(op, func(id domain.ID) bool {
			_, ok := a.issues[id]
			return ok
		})
		if err != nil {
			return domain.Issue{}, err
		}
		is.ID = id
	} else if _, ok := a.issues[is.ID]; ok {
		return domain.Issue{}, domain.DuplicateKey(op, "issue", is.ID)
	}

	stored := domain.Issue{
		ID:            is.ID,
		NewspaperID:   paperID,
		ReleaseDate:   is.ReleaseDate,
		Released:      is.Released,
		Pages:         is.Pages,
		SubscriberIDs: []domain.ID{},
	}
	a.issues[stored.ID] = &stored
	a.issueOrder = append(a.issueOrder, stored.ID)
	p.IssueIDs = append(p.IssueIDs, stored.ID)

	if editor != nil {
		a.assignLocked(editor, p, &stored)
	}

	a.log.Debug("agency.issue.added", "paper_id", paperID, "issue_id", stored.ID)
	return stored.Clone(), nil
}

// Issue returns the issue with the given ID regardless of its newspaper.
func (a *Agency) Issue(id domain.ID) (domain.Issue, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	is, ok := a.issues[id]
	if !ok {
		return domain.Issue{}, false
	}
	return is.Clone(), true
}

// Issues lists every issue of every newspaper in insertion order.
func (a *Agency) Issues() []domain.Issue {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Issue, 0, len(a.issueOrder))
	for _, id := range a.issueOrder {
		out = append(out, a.issues[id].Clone())
	}
	return out
}

// NewspaperIssue returns the issue only if it belongs to the given newspaper.
func (a *Agency) NewspaperIssue(paperID, issueID domain.ID) (domain.Issue, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, is, err := a.paperIssueLocked("agency.newspaper_issue", paperID, issueID)
	if err != nil {
		return domain.Issue{}, false
	}
	return is.Clone(), true
}

// NewspaperIssues lists the issues of a newspaper in the order they were added.
func (a *Agency) NewspaperIssues(paperID domain.ID) ([]domain.Issue, error) {
	const op = "agency.newspaper_issues"

	a.mu.RLock()
	defer a.mu.RUnlock()

	p, err := a.paperLocked(op, paperID)
	if err != nil {
		return nil, err
	}
	return a.issuesOfLocked(p), nil
}

func (a *Agency) issuesOfLocked(p *domain.Newspaper) []domain.Issue {
	out := make([]domain.Issue, 0, len(p.IssueIDs))
	for _, id := range p.IssueIDs {
		if is, ok := a.issues[id]; ok {
			out = append(out, is.Clone())
		}
	}
	return out
}

// ReleaseIssue marks the issue as released. Releasing twice is a no-op.
func (a *Agency) ReleaseIssue(paperID, issueID domain.ID) (domain.Issue, error) {
	const op = "agency.release_issue"

	a.mu.Lock()
	defer a.mu.Unlock()

	_, is, err := a.paperIssueLocked(op, paperID, issueID)
	if err != nil {
		return domain.Issue{}, err
	}
	if !is.Released {
		is.Released = true
		a.log.Debug("agency.issue.released", "paper_id", paperID, "issue_id", issueID)
	}
	return is.Clone(), nil
}

// DeliverIssue records that the subscriber received the issue, on both sides.
// Delivering the same issue to the same subscriber again changes nothing.
// Delivery does not require a subscription nor a released issue.
func (a *Agency) DeliverIssue(paperID, issueID, subscriberID domain.ID) error {
	const op = "agency.deliver_issue"

	a.mu.Lock()
	defer a.mu.Unlock()

	_, is, err := a.paperIssueLocked(op, paperID, issueID)
	if err != nil {
		return err
	}
	s, err := a.subscriberLocked(op, subscriberID)
	if err != nil {
		return err
	}

	is.SubscriberIDs = domain.AppendUnique(is.SubscriberIDs, subscriberID)
	s.DeliveredIssueIDs = domain.AppendUnique(s.DeliveredIssueIDs, issueID)

	a.log.Debug("agency.issue.delivered", "issue_id", issueID, "subscriber_id", subscriberID)
	return nil
}
