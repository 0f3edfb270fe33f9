package model

import "time"

// MediaPhoto is a standalone gallery image, not linked to News or
// Show. PublicID identifies the asset at the external image host for
// best-effort cleanup on delete.
type MediaPhoto struct {
	ID        string    `db:"id" json:"id"`
	URL       string    `db:"url" json:"url"`
	Title     *string   `db:"title" json:"title"`
	PublicID  *string   `db:"public_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateMediaPhotoParams struct {
	URL      string
	Title    *string
	PublicID *string
}
