package model

import "time"

// Image is owned by exactly one News or Show row and is deleted with
// its parent.
type Image struct {
	ID        string    `db:"id" json:"-"`
	NewsID    *string   `db:"news_id" json:"-"`
	ShowID    *string   `db:"show_id" json:"-"`
	URL       string    `db:"url" json:"url"`
	Alt       *string   `db:"alt" json:"alt"`
	PublicID  *string   `db:"public_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type CreateImageParams struct {
	URL      string
	Alt      *string
	PublicID *string
}
