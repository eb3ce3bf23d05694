// Package httpapi exposes the agency over JSON/HTTP.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/VakaruGIT/NSMS/internal/agency"
	"github.com/VakaruGIT/NSMS/internal/domain"
)

// Registry is the agency surface the handlers need.
type Registry interface {
	Newspapers() []domain.Newspaper
	Newspaper(id domain.ID) (domain.Newspaper, bool)
	AddNewspaper(n domain.Newspaper) (domain.Newspaper, error)
	UpdateNewspaper(id domain.ID, patch domain.NewspaperPatch) (domain.Newspaper, error)
	RemoveNewspaper(id domain.ID) error
	NewspaperStats(id domain.ID) (domain.NewspaperStats, error)

	NewspaperIssues(paperID domain.ID) ([]domain.Issue, error)
	NewspaperIssue(paperID, issueID domain.ID) (domain.Issue, bool)
	AddIssue(paperID domain.ID, is domain.Issue) (domain.Issue, error)
	ReleaseIssue(paperID, issueID domain.ID) (domain.Issue, error)
	SetEditorToIssue(editorID, issueID, paperID domain.ID) error
	DeliverIssue(paperID, issueID, subscriberID domain.ID) error

	Editors() []domain.Editor
	Editor(id domain.ID) (domain.Editor, bool)
	AddEditor(e domain.Editor) (domain.Editor, error)
	UpdateEditor(id domain.ID, patch domain.EditorPatch) (domain.Editor, error)
	RemoveEditor(id domain.ID) (agency.EditorRemoval, error)
	EditorIssueIDs(editorID domain.ID) ([]domain.ID, error)
	EditorNewspaperIDs(editorID domain.ID) ([]domain.ID, error)

	Subscribers() []domain.Subscriber
	SubscriberView(id domain.ID) (domain.SubscriberView, bool)
	AddSubscriber(s domain.Subscriber) (domain.Subscriber, error)
	UpdateSubscriber(id domain.ID, patch domain.SubscriberPatch) (domain.Subscriber, error)
	RemoveSubscriber(id domain.ID) error
	Subscribe(subscriberID, paperID domain.ID) (domain.Subscriber, error)
	SubscriberStats(id domain.ID) (domain.SubscriberStats, error)
	MissingIssues(id domain.ID) ([]domain.Issue, error)
}

var _ Registry = (*agency.Agency)(nil)

// Server serves the agency API.
type Server struct {
	reg    Registry
	logger *slog.Logger
	router *mux.Router
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewServer(reg Registry, opts ...Option) *Server {
	s := &Server{
		reg:    reg,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler. Paths are matched with or without a
// trailing slash.
func (s *Server) Handler() http.Handler {
	return s.recoverer(s.requestLogger(trimTrailingSlash(s.router)))
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/newspaper", s.listNewspapers).Methods(http.MethodGet)
	r.HandleFunc("/newspaper", s.createNewspaper).Methods(http.MethodPost)
	np := r.PathPrefix("/newspaper/{paper_id:[0-9]+}").Subrouter()
	np.HandleFunc("", s.getNewspaper).Methods(http.MethodGet)
	np.HandleFunc("", s.updateNewspaper).Methods(http.MethodPost)
	np.HandleFunc("", s.deleteNewspaper).Methods(http.MethodDelete)
	np.HandleFunc("/stats", s.newspaperStats).Methods(http.MethodGet)
	np.HandleFunc("/issue", s.listIssues).Methods(http.MethodGet)
	np.HandleFunc("/issue", s.createIssue).Methods(http.MethodPost)
	np.HandleFunc("/issue/{issue_id:[0-9]+}", s.getIssue).Methods(http.MethodGet)
	np.HandleFunc("/issue/{issue_id:[0-9]+}/release", s.releaseIssue).Methods(http.MethodPost)
	np.HandleFunc("/issue/{issue_id:[0-9]+}/editor/{editor_id:[0-9]+}", s.assignEditor).Methods(http.MethodPost)
	np.HandleFunc("/issue/{issue_id:[0-9]+}/deliver/{subscriber_id:[0-9]+}", s.deliverIssue).Methods(http.MethodPost)

	r.HandleFunc("/editor", s.listEditors).Methods(http.MethodGet)
	r.HandleFunc("/editor", s.createEditor).Methods(http.MethodPost)
	ed := r.PathPrefix("/editor/{editor_id:[0-9]+}").Subrouter()
	ed.HandleFunc("", s.getEditor).Methods(http.MethodGet)
	ed.HandleFunc("", s.updateEditor).Methods(http.MethodPost)
	ed.HandleFunc("", s.deleteEditor).Methods(http.MethodDelete)
	ed.HandleFunc("/issues", s.editorIssues).Methods(http.MethodGet)

	r.HandleFunc("/subscriber", s.listSubscribers).Methods(http.MethodGet)
	r.HandleFunc("/subscriber", s.createSubscriber).Methods(http.MethodPost)
	sb := r.PathPrefix("/subscriber/{subscriber_id:[0-9]+}").Subrouter()
	sb.HandleFunc("", s.getSubscriber).Methods(http.MethodGet)
	sb.HandleFunc("", s.updateSubscriber).Methods(http.MethodPost)
	sb.HandleFunc("", s.deleteSubscriber).Methods(http.MethodDelete)
	sb.HandleFunc("/subscribe/{paper_id:[0-9]+}", s.subscribe).Methods(http.MethodPost)
	sb.HandleFunc("/stats", s.subscriberStats).Methods(http.MethodGet)
	sb.HandleFunc("/missingissues", s.missingIssues).Methods(http.MethodGet)

	return r
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, cfg domain.ServerConfig) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return &domain.OpError{Op: "httpapi.listen", Kind: domain.KindExecution, Err: err}
	}
	return s.Serve(ctx, ln, cfg)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, cfg domain.ServerConfig) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       2 * cfg.ReadTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http.listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &domain.OpError{Op: "httpapi.serve", Kind: domain.KindExecution, Err: err}
	case <-ctx.Done():
	}

	s.logger.Info("http.shutting_down")
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return &domain.OpError{Op: "httpapi.shutdown", Kind: domain.KindExecution, Err: err}
	}
	s.logger.Info("http.stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
