package domain

// Wire shapes. Every entity has a detail view (full nested detail) and a
// summary view; the field names are a fixed contract with API clients.

type NewspaperView struct {
	PaperID     ID      `json:"paper_id"`
	Name        string  `json:"name"`
	Frequency   int     `json:"frequency"`
	Price       float64 `json:"price"`
	Issues      []ID    `json:"issues"`
	Subscribers []ID    `json:"subscribers"`
	Editors     []ID    `json:"editors"`
}

type NewspaperSummary struct {
	PaperID   ID      `json:"paper_id"`
	Name      string  `json:"name"`
	Frequency int     `json:"frequency"`
	Price     float64 `json:"price"`
}

type IssueView struct {
	IssueID     ID     `json:"issue_id"`
	PaperID     ID     `json:"paper_id"`
	ReleaseDate string `json:"release_date"`
	Pages       int    `json:"pages"`
	Editor      *ID    `json:"editor"`
	Released    bool   `json:"released"`
	Subscribers []ID   `json:"subscribers"`
}

type IssueSummary struct {
	IssueID     ID     `json:"issue_id"`
	ReleaseDate string `json:"release_date"`
	Released    bool   `json:"released"`
}

type EditorView struct {
	EditorID   ID     `json:"editor_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Newspapers []ID   `json:"newspapers"`
}

type EditorSummary struct {
	EditorID ID     `json:"editor_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type SubscriberView struct {
	SubscriberID    ID              `json:"subscriber_id"`
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	Newspapers      []NewspaperView `json:"newspapers"`
	DeliveredIssues []IssueView     `json:"delivered_issues"`
}

type SubscriberSummary struct {
	SubscriberID ID     `json:"subscriber_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
}

func (n Newspaper) View() NewspaperView {
	return NewspaperView{
		PaperID:     n.ID,
		Name:        n.Name,
		Frequency:   n.Frequency,
		Price:       n.Price,
		Issues:      CloneIDs(n.IssueIDs),
		Subscribers: CloneIDs(n.SubscriberIDs),
		Editors:     CloneIDs(n.EditorIDs),
	}
}

func (n Newspaper) Summary() NewspaperSummary {
	return NewspaperSummary{
		PaperID:   n.ID,
		Name:      n.Name,
		Frequency: n.Frequency,
		Price:     n.Price,
	}
}

func (i Issue) View() IssueView {
	v := IssueView{
		IssueID:     i.ID,
		PaperID:     i.NewspaperID,
		ReleaseDate: i.ReleaseDate,
		Pages:       i.Pages,
		Released:    i.Released,
		Subscribers: CloneIDs(i.SubscriberIDs),
	}
	if i.HasEditor() {
		editor := i.EditorID
		v.Editor = &editor
	}
	return v
}

func (i Issue) Summary() IssueSummary {
	return IssueSummary{
		IssueID:     i.ID,
		ReleaseDate: i.ReleaseDate,
		Released:    i.Released,
	}
}

func (e Editor) View() EditorView {
	return EditorView{
		EditorID:   e.ID,
		Name:       e.Name,
		Address:    e.Address,
		Newspapers: CloneIDs(e.NewspaperIDs),
	}
}

func (e Editor) Summary() EditorSummary {
	return EditorSummary{
		EditorID: e.ID,
		Name:     e.Name,
		Address:  e.Address,
	}
}

// View needs the subscriber's newspapers and delivered issues already resolved,
// in the order of s.NewspaperIDs and s.DeliveredIssueIDs.
func (s Subscriber) View(papers []Newspaper, delivered []Issue) SubscriberView {
	v := SubscriberView{
		SubscriberID:    s.ID,
		Name:            s.Name,
		Address:         s.Address,
		Newspapers:      make([]NewspaperView, 0, len(papers)),
		DeliveredIssues: make([]IssueView, 0, len(delivered)),
	}
	for _, p := range papers {
		v.Newspapers = append(v.Newspapers, p.View())
	}
	for _, is := range delivered {
		v.DeliveredIssues = append(v.DeliveredIssues, is.View())
	}
	return v
}

func (s Subscriber) Summary() SubscriberSummary {
	return SubscriberSummary{
		SubscriberID: s.ID,
		Name:         s.Name,
		Address:      s.Address,
	}
}
