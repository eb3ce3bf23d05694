package ports

import "github.com/VakaruGIT/NSMS/internal/domain"

// ReportStore persists agency reports.
type ReportStore interface {
	SaveReport(report domain.AgencyReport) (id string, err error)
}
