package httpapi

import (
	"fmt"
	"net/http"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

type newspaperRequest struct {
	Name      *string  `json:"name"`
	Frequency *int     `json:"frequency"`
	Price     *float64 `json:"price"`
}

type issueRequest struct {
	ReleaseDate string    `json:"release_date"`
	Released    bool      `json:"released"`
	Page        int       `json:"page"`
	EditorID    domain.ID `json:"editor_id"`
}

type newspaperStatsResponse struct {
	Message           string  `json:"message"`
	NumberSubscribers int     `json:"number_subscribers"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	AnnualRevenue     float64 `json:"annual_revenue"`
}

func (s *Server) listNewspapers(w http.ResponseWriter, r *http.Request) {
	papers := s.reg.Newspapers()
	out := make([]domain.NewspaperSummary, 0, len(papers))
	for _, p := range papers {
		out = append(out, p.Summary())
	}
	writeJSON(w, http.StatusOK, map[string]any{"newspapers": out})
}

func (s *Server) createNewspaper(w http.ResponseWriter, r *http.Request) {
	var req newspaperRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	required := []struct {
		field   string
		missing bool
	}{
		{"name", req.Name == nil},
		{"frequency", req.Frequency == nil},
		{"price", req.Price == nil},
	}
	for _, f := range required {
		if f.missing {
			s.writeError(w, r, domain.InvalidInput("httpapi.create_newspaper", f.field, "is required"))
			return
		}
	}

	p, err := s.reg.AddNewspaper(domain.Newspaper{
		Name:      *req.Name,
		Frequency: *req.Frequency,
		Price:     *req.Price,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"newspaper": p.View()})
}

func (s *Server) getNewspaper(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, ok := s.reg.Newspaper(id)
	if !ok {
		s.writeError(w, r, domain.NotFound("httpapi.get_newspaper", "newspaper", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"newspaper": p.View()})
}

func (s *Server) updateNewspaper(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req newspaperRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.reg.UpdateNewspaper(id, domain.NewspaperPatch{
		Name:      req.Name,
		Frequency: req.Frequency,
		Price:     req.Price,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"newspaper": p.View()})
}

func (s *Server) deleteNewspaper(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.reg.RemoveNewspaper(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Newspaper with ID %d was deleted", id))
}

func (s *Server) newspaperStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st, err := s.reg.NewspaperStats(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": newspaperStatsResponse{
		Message:           "Statistics for the newspaper",
		NumberSubscribers: st.Subscribers,
		MonthlyRevenue:    st.MonthlyRevenue,
		AnnualRevenue:     st.AnnualRevenue,
	}})
}

func (s *Server) listIssues(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	issues, err := s.reg.NewspaperIssues(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"issues": issueViews(issues)})
}

func (s *Server) createIssue(w http.ResponseWriter, r *http.Request) {
	paperID, err := pathID(r, "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req issueRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	is, err := s.reg.AddIssue(paperID, domain.Issue{
		ReleaseDate: req.ReleaseDate,
		Released:    req.Released,
		Pages:       req.Page,
		EditorID:    req.EditorID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"issue": is.View()})
}

func (s *Server) getIssue(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "paper_id", "issue_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	paperID, issueID := ids[0], ids[1]

	if _, ok := s.reg.Newspaper(paperID); !ok {
		s.writeError(w, r, domain.NotFound("httpapi.get_issue", "newspaper", paperID))
		return
	}
	is, ok := s.reg.NewspaperIssue(paperID, issueID)
	if !ok {
		s.writeError(w, r, domain.NotFound("httpapi.get_issue", "issue", issueID))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"issue": is.View()})
}

func (s *Server) releaseIssue(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "paper_id", "issue_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	is, err := s.reg.ReleaseIssue(ids[0], ids[1])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"issue": is.View()})
}

func (s *Server) assignEditor(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "paper_id", "issue_id", "editor_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	paperID, issueID, editorID := ids[0], ids[1], ids[2]

	if err := s.reg.SetEditorToIssue(editorID, issueID, paperID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Editor assigned successfully",
		"editor_id": editorID,
	})
}

func (s *Server) deliverIssue(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "paper_id", "issue_id", "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	paperID, issueID, subscriberID := ids[0], ids[1], ids[2]

	if err := s.reg.DeliverIssue(paperID, issueID, subscriberID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Issue delivered successfully",
		"subscriber_id": subscriberID,
	})
}

func issueViews(issues []domain.Issue) []domain.IssueView {
	out := make([]domain.IssueView, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.View())
	}
	return out
}
