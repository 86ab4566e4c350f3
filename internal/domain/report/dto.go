package report

// Stats is one person's monthly aggregation. Buckets count days: a full
// day contributes 1.0, a populated half-day 0.5. Rate is an integer
// percentage of counted days spent present (optionally including
// homeworking, see Options in the report service).
type Stats struct {
	PersonID     int64   `json:"person_id"`
	Trigramme    string  `json:"trigramme"`
	Present      float64 `json:"present"`
	Sickness     float64 `json:"sickness"`
	Holidays     float64 `json:"holidays"`
	Training     float64 `json:"training"`
	Homeworking  float64 `json:"homeworking"`
	TotalCounted float64 `json:"total_counted"`
	Rate         int     `json:"rate"`
}

// TeamStats sums the member buckets of one team for a month.
type TeamStats struct {
	Team         string  `json:"team"`
	Members      int     `json:"members"`
	Present      float64 `json:"present"`
	TotalCounted float64 `json:"total_counted"`
	Rate         int     `json:"rate"`
}

// HomeworkingWarning flags a Monday-start week in which a person was
// homeworking on more than three distinct dates.
type HomeworkingWarning struct {
	PersonID        int64  `json:"person_id"`
	Trigramme       string `json:"trigramme"`
	WeekStart       string `json:"week_start"`
	HomeworkingDays int    `json:"homeworking_days"`
}

// CapacityWarning flags a date on which full-day present records exceed
// the configured daily capacity limit.
type CapacityWarning struct {
	Date          string `json:"date"`
	PresentCount  int    `json:"present_count"`
	CapacityLimit int    `json:"capacity_limit"`
}

// Warnings bundles both policy checks for one month.
type Warnings struct {
	Homeworking []HomeworkingWarning `json:"homeworking"`
	Capacity    []CapacityWarning    `json:"capacity"`
}
