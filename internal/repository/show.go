package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
)

type ShowRepository interface {
	FindAll(ctx context.Context) ([]model.Show, error)
	FindByID(ctx context.Context, id string) (*model.Show, error)
	Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error)
	Update(ctx context.Context, id string, params model.UpdateShowParams) (*model.Show, error)
	Delete(ctx context.Context, id string) error
	WithTx(tx *sqlx.Tx) ShowRepository
}

type showRepo struct {
	db database.DBTX
}

func NewShowRepository(db database.DBTX) ShowRepository {
	return &showRepo{db: db}
}

func (r *showRepo) WithTx(tx *sqlx.Tx) ShowRepository {
	return &showRepo{db: tx}
}

func (r *showRepo) FindAll(ctx context.Context) ([]model.Show, error) {
	var shows []model.Show
	err := r.db.SelectContext(ctx, &shows, `
		SELECT * FROM shows
		ORDER BY start_date DESC, id DESC
	`)
	return shows, err
}

func (r *showRepo) FindByID(ctx context.Context, id string) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `SELECT * FROM shows WHERE id = $1`, id)
	return HandleNotFound(&show, err)
}

func (r *showRepo) Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `
		INSERT INTO shows (title, location, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, params.Title, params.Location, params.Description, params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepo) Update(ctx context.Context, id string, params model.UpdateShowParams) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `
		UPDATE shows SET title = $2, location = $3, description = $4, start_date = $5, end_date = $6
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Location, params.Description, params.StartDate, params.EndDate)
	return HandleNotFound(&show, err)
}

func (r *showRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = $1`, id)
	return err
}
