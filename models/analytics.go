package models

import "time"

// MonthPoint buckets analytics by integer year/month keys. Joining on
// rendered month labels breaks across locales, so labels are produced only
// at the presentation edge.
type MonthPoint struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Count   int64      `json:"count"`
	Revenue float64    `json:"revenue,omitempty"`
}

func (p MonthPoint) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

type AnalyticsReport struct {
	Users   []MonthPoint `json:"users,omitempty"`
	Courses []MonthPoint `json:"courses,omitempty"`
	Orders  []MonthPoint `json:"orders,omitempty"`
}
