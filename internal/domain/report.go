package domain

import "time"

// AgencyReport is a point-in-time summary of the whole agency.
type AgencyReport struct {
	ID          string    `json:"id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`

	Newspapers  []NewspaperReport  `json:"newspapers"`
	Subscribers []SubscriberReport `json:"subscribers"`
	Editors     int                `json:"editors"`
	Issues      int                `json:"issues"`

	TotalMonthlyRevenue float64 `json:"total_monthly_revenue"`
	TotalAnnualRevenue  float64 `json:"total_annual_revenue"`
}

type NewspaperReport struct {
	PaperID        ID      `json:"paper_id"`
	Name           string  `json:"name"`
	Issues         int     `json:"issues"`
	Released       int     `json:"released"`
	Subscribers    int     `json:"subscribers"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	AnnualRevenue  float64 `json:"annual_revenue"`
}

type SubscriberReport struct {
	SubscriberID  ID      `json:"subscriber_id"`
	Name          string  `json:"name"`
	Subscriptions int     `json:"subscriptions"`
	MonthlyCost   float64 `json:"monthly_cost"`
	Delivered     int     `json:"delivered"`
	Missing       int     `json:"missing"`
}
