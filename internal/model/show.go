package model

import "time"

type ShowStatus string

const (
	ShowStatusUpcoming ShowStatus = "upcoming"
	ShowStatusPast     ShowStatus = "past"
)

type Show struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	StartDate   time.Time `db:"start_date" json:"startDate"`
	EndDate     time.Time `db:"end_date" json:"endDate"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	Images      []Image   `db:"-" json:"images"`
}

// Status is computed from the dates rather than stored, so it can
// never drift from reality.
func (s Show) Status(now time.Time) ShowStatus {
	if !s.EndDate.Before(now) {
		return ShowStatusUpcoming
	}
	return ShowStatusPast
}

type CreateShowParams struct {
	Title       string
	Location    string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

type UpdateShowParams struct {
	Title       string
	Location    string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}
