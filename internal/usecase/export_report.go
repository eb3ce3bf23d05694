package usecase

import (
	"time"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

type ExportReport struct {
	reader ports.AgencyReader
	store  ports.ReportStore
	now    func() time.Time
}

type ExportOption func(*ExportReport)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ExportOption {
	return func(uc *ExportReport) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewExportReport builds the use case. store may be nil when reports are
// only rendered, never saved.
func NewExportReport(reader ports.AgencyReader, store ports.ReportStore, opts ...ExportOption) *ExportReport {
	uc := &ExportReport{
		reader: reader,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds the report and, when save is set, persists it. The returned
// report carries the ID assigned by the store.
func (uc *ExportReport) Execute(save bool) (domain.AgencyReport, error) {
	report, err := BuildReport(uc.reader, uc.now())
	if err != nil {
		return domain.AgencyReport{}, err
	}
	if !save || uc.store == nil {
		return report, nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, err
	}
	report.ID = id
	return report, nil
}

// BuildReport summarizes every newspaper and subscriber of the agency.
func BuildReport(r ports.AgencyReader, at time.Time) (domain.AgencyReport, error) {
	papers := r.Newspapers()
	subs := r.Subscribers()

	report := domain.AgencyReport{
		GeneratedAt: at.UTC(),
		Newspapers:  make([]domain.NewspaperReport, 0, len(papers)),
		Subscribers: make([]domain.SubscriberReport, 0, len(subs)),
		Editors:     len(r.Editors()),
		Issues:      len(r.Issues()),
	}

	for _, p := range papers {
		issues, err := r.NewspaperIssues(p.ID)
		if err != nil {
			return domain.AgencyReport{}, err
		}
		released := 0
		for _, is := range issues {
			if is.Released {
				released++
			}
		}

		monthly := p.MonthlyRevenue()
		report.Newspapers = append(report.Newspapers, domain.NewspaperReport{
			PaperID:        p.ID,
			Name:           p.Name,
			Issues:         len(issues),
			Released:       released,
			Subscribers:    p.SubscriberCount(),
			MonthlyRevenue: monthly,
			AnnualRevenue:  domain.AnnualFromMonthly(monthly),
		})
		report.TotalMonthlyRevenue += monthly
	}
	report.TotalAnnualRevenue = domain.AnnualFromMonthly(report.TotalMonthlyRevenue)

	for _, s := range subs {
		st, err := r.SubscriberStats(s.ID)
		if err != nil {
			return domain.AgencyReport{}, err
		}
		missing, err := r.MissingIssues(s.ID)
		if err != nil {
			return domain.AgencyReport{}, err
		}
		report.Subscribers = append(report.Subscribers, domain.SubscriberReport{
			SubscriberID:  s.ID,
			Name:          s.Name,
			Subscriptions: st.Subscriptions,
			MonthlyCost:   st.MonthlyCost,
			Delivered:     st.DeliveredIssues,
			Missing:       len(missing),
		})
	}

	return report, nil
}
