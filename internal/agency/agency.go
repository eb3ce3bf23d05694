// Package agency implements the in-memory registry that owns every newspaper,
// issue, editor and subscriber of the process.
//
// Entities reference each other by identifier only; the Agency resolves those
// references at read time. One mutex guards the whole registry, so each exported
// method is atomic with respect to every other one. Getters return copies.
package agency

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

const maxIDAttempts = 64

type Agency struct {
	mu sync.RWMutex

	newspapers  map[domain.ID]*domain.Newspaper
	issues      map[domain.ID]*domain.Issue
	editors     map[domain.ID]*domain.Editor
	subscribers map[domain.ID]*domain.Subscriber

	// insertion order, used for listings and "first other editor" lookups
	paperOrder      []domain.ID
	issueOrder      []domain.ID
	editorOrder     []domain.ID
	subscriberOrder []domain.ID

	ids ports.IDGenerator
	log *slog.Logger
}

type Option func(*Agency)

// WithIDGenerator sets the source of identifiers for entities added without one.
func WithIDGenerator(g ports.IDGenerator) Option {
	return func(a *Agency) {
		if g != nil {
			a.ids = g
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Agency) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an empty agency. Without WithIDGenerator identifiers are handed
// out sequentially starting at 1.
func New(opts ...Option) *Agency {
	a := &Agency{
		ids: &sequence{},
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	a.resetLocked()
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var (
	_ ports.AgencyWriter = (*Agency)(nil)
	_ ports.AgencyReader = (*Agency)(nil)
)

// Reset drops every entity. Intended for test harnesses.
func (a *Agency) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetLocked()
	a.log.Debug("agency.reset")
}

func (a *Agency) resetLocked() {
	a.newspapers = map[domain.ID]*domain.Newspaper{}
	a.issues = map[domain.ID]*domain.Issue{}
	a.editors = map[domain.ID]*domain.Editor{}
	a.subscribers = map[domain.ID]*domain.Subscriber{}
	a.paperOrder = nil
	a.issueOrder = nil
	a.editorOrder = nil
	a.subscriberOrder = nil
}

// newIDLocked draws identifiers until one is positive and not taken.
func (a *Agency) newIDLocked(op string, taken func(domain.ID) bool) (domain.ID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := a.ids.NextID()
		if id > 0 && !taken(id) {
			return id, nil
		}
	}
	return 0, &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  errors.New("could not allocate a free identifier"),
	}
}

func (a *Agency) paperLocked(op string, id domain.ID) (*domain.Newspaper, error) {
	p, ok := a.newspapers[id]
	if !ok {
		return nil, domain.NotFound(op, "newspaper", id)
	}
	return p, nil
}

func (a *Agency) issueLocked(op string, id domain.ID) (*domain.Issue, error) {
	is, ok := a.issues[id]
	if !ok {
		return nil, domain.NotFound(op, "issue", id)
	}
	return is, nil
}

// paperIssueLocked resolves an issue that must belong to the given newspaper.
func (a *Agency) paperIssueLocked(op string, paperID, issueID domain.ID) (*domain.Newspaper, *domain.Issue, error) {
	p, err := a.paperLocked(op, paperID)
	if err != nil {
		return nil, nil, err
	}
	is, ok := a.issues[issueID]
	if !ok || is.NewspaperID != paperID {
		return nil, nil, domain.NotFound(op, "issue", issueID)
	}
	return p, is, nil
}

func (a *Agency) editorLocked(op string, id domain.ID) (*domain.Editor, error) {
	e, ok := a.editors[id]
	if !ok {
		return nil, domain.NotFound(op, "editor", id)
	}
	return e, nil
}

func (a *Agency) subscriberLocked(op string, id domain.ID) (*domain.Subscriber, error) {
	s, ok := a.subscribers[id]
	if !ok {
		return nil, domain.NotFound(op, "subscriber", id)
	}
	return s, nil
}

// sequence is the default IDGenerator. Only used under the agency lock.
type sequence struct {
	last domain.ID
}

func (s *sequence) NextID() domain.ID {
	s.last++
	return s.last
}
