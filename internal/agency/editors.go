package agency

import (
	"github.com/VakaruGIT/NSMS/internal/domain"
)

// EditorRemoval describes what happened to the issues of a removed editor.
type EditorRemoval struct {
	EditorID domain.ID

	// Reassigned maps issue ID -> editor now responsible for it.
	Reassigned map[domain.ID]domain.ID

	// Unassigned lists issues for which no other editor of the same newspaper
	// existed. Their editor reference is left as it was.
	Unassigned []domain.ID
}

func (a *Agency) AddEditor(e domain.Editor) (domain.Editor, error) {
	const op = "agency.add_editor"
	if err := validateID(op, "editor_id", e.ID); err != nil {
		return domain.Editor{}, err
	}
	if err := validatePerson(op, "editor", e.Name); err != nil {
		return domain.Editor{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if e.ID == 0 {
		id, err := a.newIDLocked(op, func(id domain.ID) bool {
			_, ok := a.editors[id]
			return ok
		})
		if err != nil {
			return domain.Editor{}, err
		}
		e.ID = id
	} else if _, ok := a.editors[e.ID]; ok {
		return domain.Editor{}, domain.DuplicateKey(op, "editor", e.ID)
	}

	stored := domain.Editor{
		ID:           e.ID,
		Name:         e.Name,
		Address:      e.Address,
		NewspaperIDs: []domain.ID{},
	}
	a.editors[stored.ID] = &stored
	a.editorOrder = append(a.editorOrder, stored.ID)

	a.log.Debug("agency.editor.added", "editor_id", stored.ID)
	return stored.Clone(), nil
}

func (a *Agency) Editor(id domain.ID) (domain.Editor, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	e, ok := a.editors[id]
	if !ok {
		return domain.Editor{}, false
	}
	return e.Clone(), true
}

func (a *Agency) Editors() []domain.Editor {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Editor, 0, len(a.editorOrder))
	for _, id := range a.editorOrder {
		out = append(out, a.editors[id].Clone())
	}
	return out
}

func (a *Agency) UpdateEditor(id domain.ID, patch domain.EditorPatch) (domain.Editor, error) {
	const op = "agency.update_editor"

	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.editorLocked(op, id)
	if err != nil {
		return domain.Editor{}, err
	}
	updated := patch.Apply(*e)
	if err := validatePerson(op, "editor", updated.Name); err != nil {
		return domain.Editor{}, err
	}
	*e = updated

	a.log.Debug("agency.editor.updated", "editor_id", id)
	return e.Clone(), nil
}

// SetEditorToIssue makes the editor responsible for the issue: the editor and
// the newspaper are linked both ways and the issue's editor is overwritten.
func (a *Agency) SetEditorToIssue(editorID, issueID, paperID domain.ID) error {
	const op = "agency.set_editor_to_issue"

	a.mu.Lock()
	defer a.mu.Unlock()

	p, is, err := a.paperIssueLocked(op, paperID, issueID)
	if err != nil {
		return err
	}
	e, err := a.editorLocked(op, editorID)
	if err != nil {
		return err
	}

	a.assignLocked(e, p, is)
	a.log.Debug("agency.issue.editor_set", "issue_id", issueID, "editor_id", editorID)
	return nil
}

func (a *Agency) assignLocked(e *domain.Editor, p *domain.Newspaper, is *domain.Issue) {
	e.NewspaperIDs = domain.AppendUnique(e.NewspaperIDs, p.ID)
	p.EditorIDs = domain.AppendUnique(p.EditorIDs, e.ID)
	is.EditorID = e.ID
}

// AnyOtherEditor returns the first editor, other than editorID, linked to the newspaper.
func (a *Agency) AnyOtherEditor(editorID, paperID domain.ID) (domain.Editor, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	e := a.anyOtherEditorLocked(editorID, paperID)
	if e == nil {
		return domain.Editor{}, false
	}
	return e.Clone(), true
}

func (a *Agency) anyOtherEditorLocked(editorID, paperID domain.ID) *domain.Editor {
	for _, id := range a.editorOrder {
		if id == editorID {
			continue
		}
		if e := a.editors[id]; domain.ContainsID(e.NewspaperIDs, paperID) {
			return e
		}
	}
	return nil
}

// ReassignIssue hands the issue over to another editor. The previous editor is
// unlinked from the newspaper once it no longer edits any issue there.
func (a *Agency) ReassignIssue(issueID, toEditorID domain.ID) error {
	const op = "agency.reassign_issue"

	a.mu.Lock()
	defer a.mu.Unlock()

	is, err := a.issueLocked(op, issueID)
	if err != nil {
		return err
	}
	to, err := a.editorLocked(op, toEditorID)
	if err != nil {
		return err
	}
	p, err := a.paperLocked(op, is.NewspaperID)
	if err != nil {
		return err
	}

	a.reassignLocked(is, p, to)
	return nil
}

func (a *Agency) reassignLocked(is *domain.Issue, p *domain.Newspaper, to *domain.Editor) {
	prev := is.EditorID
	a.assignLocked(to, p, is)

	if prev == 0 || prev == to.ID {
		return
	}
	if from, ok := a.editors[prev]; ok && !a.editsAnyIssueLocked(prev, p) {
		from.NewspaperIDs = domain.RemoveID(from.NewspaperIDs, p.ID)
		p.EditorIDs = domain.RemoveID(p.EditorIDs, prev)
	}
	a.log.Debug("agency.issue.reassigned", "issue_id", is.ID, "from", prev, "to", to.ID)
}

func (a *Agency) editsAnyIssueLocked(editorID domain.ID, p *domain.Newspaper) bool {
	for _, id := range p.IssueIDs {
		if is, ok := a.issues[id]; ok && is.EditorID == editorID {
			return true
		}
	}
	return false
}

// RemoveEditor removes the editor. Each issue it edits is first handed over to
// another editor of the same newspaper when there is one; otherwise the issue
// keeps pointing at the removed editor.
func (a *Agency) RemoveEditor(id domain.ID) (EditorRemoval, error) {
	const op = "agency.remove_editor"

	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.editorLocked(op, id)
	if err != nil {
		return EditorRemoval{}, err
	}

	res := EditorRemoval{
		EditorID:   id,
		Reassigned: map[domain.ID]domain.ID{},
		Unassigned: []domain.ID{},
	}

	for _, issueID := range a.issueOrder {
		is := a.issues[issueID]
		if is.EditorID != id {
			continue
		}
		p, ok := a.newspapers[is.NewspaperID]
		if !ok {
			res.Unassigned = append(res.Unassigned, issueID)
			continue
		}
		other := a.anyOtherEditorLocked(id, p.ID)
		if other == nil {
			res.Unassigned = append(res.Unassigned, issueID)
			continue
		}
		a.reassignLocked(is, p, other)
		res.Reassigned[issueID] = other.ID
	}

	for _, paperID := range e.NewspaperIDs {
		if p, ok := a.newspapers[paperID]; ok {
			p.EditorIDs = domain.RemoveID(p.EditorIDs, id)
		}
	}

	delete(a.editors, id)
	a.editorOrder = domain.RemoveID(a.editorOrder, id)

	a.log.Debug("agency.editor.removed",
		"editor_id", id,
		"reassigned", len(res.Reassigned),
		"unassigned", len(res.Unassigned))
	return res, nil
}

// EditorIssueIDs lists the issues the editor is responsible for.
func (a *Agency) EditorIssueIDs(editorID domain.ID) ([]domain.ID, error) {
	const op = "agency.editor_issue_ids"

	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, err := a.editorLocked(op, editorID); err != nil {
		return nil, err
	}
	out := []domain.ID{}
	for _, id := range a.issueOrder {
		if a.issues[id].EditorID == editorID {
			out = append(out, id)
		}
	}
	return out, nil
}

// EditorNewspaperIDs lists the newspapers the editor is linked to.
func (a *Agency) EditorNewspaperIDs(editorID domain.ID) ([]domain.ID, error) {
	const op = "agency.editor_newspaper_ids"

	a.mu.RLock()
	defer a.mu.RUnlock()

	e, err := a.editorLocked(op, editorID)
	if err != nil {
		return nil, err
	}
	return domain.CloneIDs(e.NewspaperIDs), nil
}
