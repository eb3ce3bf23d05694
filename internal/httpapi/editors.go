package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

type personRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (s *Server) listEditors(w http.ResponseWriter, r *http.Request) {
	editors := s.reg.Editors()
	out := make([]domain.EditorSummary, 0, len(editors))
	for _, e := range editors {
		out = append(out, e.Summary())
	}
	writeJSON(w, http.StatusOK, map[string]any{"editors": out})
}

func (s *Server) createEditor(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Name == nil {
		s.writeError(w, r, domain.InvalidInput("httpapi.create_editor", "name", "is required"))
		return
	}

	e, err := s.reg.AddEditor(domain.Editor{Name: *req.Name, Address: deref(req.Address)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"editor": e.View()})
}

func (s *Server) getEditor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "editor_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, ok := s.reg.Editor(id)
	if !ok {
		s.writeError(w, r, domain.NotFound("httpapi.get_editor", "editor", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"editor": e.View()})
}

func (s *Server) updateEditor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "editor_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req personRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.reg.UpdateEditor(id, domain.EditorPatch{Name: req.Name, Address: req.Address})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"editor": e.View()})
}

func (s *Server) deleteEditor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "editor_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.reg.RemoveEditor(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// JSON object keys must be strings
	reassigned := make(map[string]domain.ID, len(res.Reassigned))
	for issueID, editorID := range res.Reassigned {
		reassigned[strconv.FormatInt(int64(issueID), 10)] = editorID
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    fmt.Sprintf("Editor with ID %d was deleted", id),
		"reassigned": reassigned,
		"unassigned": res.Unassigned,
	})
}

func (s *Server) editorIssues(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "editor_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	issues, err := s.reg.EditorIssueIDs(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	papers, err := s.reg.EditorNewspaperIDs(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    fmt.Sprintf("Editor with ID %d was responsible for the following issues", id),
		"issues":     issues,
		"newspapers": papers,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
