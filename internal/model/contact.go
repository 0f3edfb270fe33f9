package model

import "time"

// ContactMessage is write-once from the public form and only ever
// read or deleted by the admin.
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateContactMessageParams struct {
	Name    string
	Email   string
	Message string
}
