package reportstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

const (
	defaultReportsDir = "reports"
	reportSuffix      = "agency-report"
	maskValue         = "********"
	maxCollisions     = 100
)

type JSONStore struct {
	rootDir        string
	reportsDirName string
	redactNames    bool
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithRedaction masks subscriber names in saved reports.
func WithRedaction(enabled bool) Option {
	return func(s *JSONStore) { s.redactNames = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// Dir is where reports are written.
func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.reportsDirName) {
		return s.reportsDirName
	}
	return filepath.Join(s.rootDir, s.reportsDirName)
}

// SaveReport writes the report as <UTC timestamp>_agency-report.json and
// returns its ID (the file name without extension). A report saved within
// the same second gets a numeric suffix instead of overwriting.
func (s *JSONStore) SaveReport(report domain.AgencyReport) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.GeneratedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := report
	toSave.GeneratedAt = ts

	id, path, err := s.freeName(dir, ts)
	if err != nil {
		return "", err
	}
	toSave.ID = id

	if s.redactNames {
		toSave = redact(toSave)
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

func (s *JSONStore) freeName(dir string, ts time.Time) (id, path string, err error) {
	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), reportSuffix)
	for n := 1; n <= maxCollisions; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		path = filepath.Join(dir, id+".json")
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return id, path, nil
		}
	}
	return "", "", &domain.OpError{
		Op:   "reportstore.name",
		Kind: domain.KindExecution,
		Path: dir,
		Err:  fmt.Errorf("no free file name for %s after %d attempts", base, maxCollisions),
	}
}

func (s *JSONStore) appendIndex(dir, id, filename string, report domain.AgencyReport) error {
	type idx struct {
		ID                  string    `json:"id"`
		File                string    `json:"file"`
		Newspapers          int       `json:"newspapers"`
		Subscribers         int       `json:"subscribers"`
		TotalMonthlyRevenue float64   `json:"total_monthly_revenue"`
		GeneratedAt         time.Time `json:"generated_at"`
	}
	line, err := json.Marshal(idx{
		ID:                  id,
		File:                filename,
		Newspapers:          len(report.Newspapers),
		Subscribers:         len(report.Subscribers),
		TotalMonthlyRevenue: report.TotalMonthlyRevenue,
		GeneratedAt:         report.GeneratedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// redact returns a masked copy (does NOT mutate the input).
func redact(report domain.AgencyReport) domain.AgencyReport {
	out := report
	out.Subscribers = make([]domain.SubscriberReport, len(report.Subscribers))
	copy(out.Subscribers, report.Subscribers)
	for i := range out.Subscribers {
		out.Subscribers[i].Name = maskValue
	}
	return out
}
