package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
)

type ContactMessageRepository interface {
	FindAll(ctx context.Context) ([]model.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	Create(ctx context.Context, params model.CreateContactMessageParams) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	WithTx(tx *sqlx.Tx) ContactMessageRepository
}

type contactMessageRepo struct {
	db database.DBTX
}

func NewContactMessageRepository(db database.DBTX) ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

func (r *contactMessageRepo) WithTx(tx *sqlx.Tx) ContactMessageRepository {
	return &contactMessageRepo{db: tx}
}

func (r *contactMessageRepo) FindAll(ctx context.Context) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	err := r.db.SelectContext(ctx, &messages, `
		SELECT * FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`)
	return messages, err
}

func (r *contactMessageRepo) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var message model.ContactMessage
	err := r.db.GetContext(ctx, &message, `SELECT * FROM contact_messages WHERE id = $1`, id)
	return HandleNotFound(&message, err)
}

func (r *contactMessageRepo) Create(ctx context.Context, params model.CreateContactMessageParams) (*model.ContactMessage, error) {
	var message model.ContactMessage
	err := r.db.GetContext(ctx, &message, `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.Name, params.Email, params.Message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	return err
}
