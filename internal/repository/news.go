package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
)

type NewsRepository interface {
	FindAll(ctx context.Context, limit int) ([]model.News, error)
	FindByID(ctx context.Context, id string) (*model.News, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, params model.CreateNewsParams) (*model.News, error)
	Update(ctx context.Context, id string, params model.UpdateNewsParams) (*model.News, error)
	UpdateSlug(ctx context.Context, id, slug string) error
	Delete(ctx context.Context, id string) error
	WithTx(tx *sqlx.Tx) NewsRepository
}

type newsRepo struct {
	db database.DBTX
}

func NewNewsRepository(db database.DBTX) NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) WithTx(tx *sqlx.Tx) NewsRepository {
	return &newsRepo{db: tx}
}

func (r *newsRepo) FindAll(ctx context.Context, limit int) ([]model.News, error) {
	var items []model.News
	if limit > 0 {
		err := r.db.SelectContext(ctx, &items, `
			SELECT * FROM news
			ORDER BY published_at DESC, id DESC
			LIMIT $1
		`, limit)
		return items, err
	}

	err := r.db.SelectContext(ctx, &items, `
		SELECT * FROM news
		ORDER BY published_at DESC, id DESC
	`)
	return items, err
}

func (r *newsRepo) FindByID(ctx context.Context, id string) (*model.News, error) {
	var item model.News
	err := r.db.GetContext(ctx, &item, `SELECT * FROM news WHERE id = $1`, id)
	return HandleNotFound(&item, err)
}

func (r *newsRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var taken bool
	err := r.db.GetContext(ctx, &taken, `
		SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1)
	`, slug)
	return taken, err
}

func (r *newsRepo) Create(ctx context.Context, params model.CreateNewsParams) (*model.News, error) {
	var item model.News
	err := r.db.GetContext(ctx, &item, `
		INSERT INTO news (title, slug, content, published_at)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.Title, params.Slug, params.Content, params.PublishedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepo) Update(ctx context.Context, id string, params model.UpdateNewsParams) (*model.News, error) {
	var item model.News
	err := r.db.GetContext(ctx, &item, `
		UPDATE news SET title = $2, content = $3, published_at = $4
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Content, params.PublishedAt)
	return HandleNotFound(&item, err)
}

func (r *newsRepo) UpdateSlug(ctx context.Context, id, slug string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE news SET slug = $2 WHERE id = $1`, id, slug)
	return err
}

func (r *newsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	return err
}
