package httpapi

import (
	"fmt"
	"net/http"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

type subscriberStatsResponse struct {
	Message               string  `json:"message"`
	NumberOfSubscriptions int     `json:"number_of_subscriptions"`
	MonthlyCost           float64 `json:"monthly_cost"`
	AnnualCost            float64 `json:"annual_cost"`
	NumberOfIssues        int     `json:"number_of_issues"`
}

func (s *Server) listSubscribers(w http.ResponseWriter, r *http.Request) {
	subs := s.reg.Subscribers()
	out := make([]domain.SubscriberSummary, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub.Summary())
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscribers": out})
}

func (s *Server) createSubscriber(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Name == nil {
		s.writeError(w, r, domain.InvalidInput("httpapi.create_subscriber", "name", "is required"))
		return
	}

	sub, err := s.reg.AddSubscriber(domain.Subscriber{Name: *req.Name, Address: deref(req.Address)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSubscriber(w, r, http.StatusCreated, sub.ID)
}

func (s *Server) getSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSubscriber(w, r, http.StatusOK, id)
}

func (s *Server) updateSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req personRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.reg.UpdateSubscriber(id, domain.SubscriberPatch{Name: req.Name, Address: req.Address}); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSubscriber(w, r, http.StatusOK, id)
}

func (s *Server) deleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.reg.RemoveSubscriber(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Subscriber with ID %d was deleted", id))
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "subscriber_id", "paper_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.reg.Subscribe(ids[0], ids[1]); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSubscriber(w, r, http.StatusOK, ids[0])
}

func (s *Server) subscriberStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st, err := s.reg.SubscriberStats(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": subscriberStatsResponse{
		Message:               "Statistics for the subscriber",
		NumberOfSubscriptions: st.Subscriptions,
		MonthlyCost:           st.MonthlyCost,
		AnnualCost:            st.AnnualCost,
		NumberOfIssues:        st.DeliveredIssues,
	}})
}

func (s *Server) missingIssues(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriber_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	missing, err := s.reg.MissingIssues(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"missing_issues": issueViews(missing)})
}

// writeSubscriber renders the nested detail view of a subscriber.
func (s *Server) writeSubscriber(w http.ResponseWriter, r *http.Request, code int, id domain.ID) {
	v, ok := s.reg.SubscriberView(id)
	if !ok {
		s.writeError(w, r, domain.NotFound("httpapi.get_subscriber", "subscriber", id))
		return
	}
	writeJSON(w, code, map[string]any{"subscriber": v})
}
