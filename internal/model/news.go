package model

import "time"

type News struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Content     string    `db:"content" json:"content"`
	PublishedAt time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	Images      []Image   `db:"-" json:"images"`
}

type CreateNewsParams struct {
	Title       string
	Slug        string
	Content     string
	PublishedAt time.Time
}

type UpdateNewsParams struct {
	Title       string
	Content     string
	PublishedAt time.Time
}
