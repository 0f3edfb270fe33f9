package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
)

type ImageRepository interface {
	FindByNewsID(ctx context.Context, newsID string) ([]model.Image, error)
	FindByShowID(ctx context.Context, showID string) ([]model.Image, error)
	FindByNewsIDs(ctx context.Context, newsIDs []string) (map[string][]model.Image, error)
	FindByShowIDs(ctx context.Context, showIDs []string) (map[string][]model.Image, error)
	CreateForNews(ctx context.Context, newsID string, params model.CreateImageParams) (*model.Image, error)
	CreateForShow(ctx context.Context, showID string, params model.CreateImageParams) (*model.Image, error)
	DeleteByNewsID(ctx context.Context, newsID string) error
	DeleteByShowID(ctx context.Context, showID string) error
	WithTx(tx *sqlx.Tx) ImageRepository
}

type imageRepo struct {
	db database.DBTX
}

func NewImageRepository(db database.DBTX) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) WithTx(tx *sqlx.Tx) ImageRepository {
	return &imageRepo{db: tx}
}

func (r *imageRepo) FindByNewsID(ctx context.Context, newsID string) ([]model.Image, error) {
	var images []model.Image
	err := r.db.SelectContext(ctx, &images, `
		SELECT * FROM images WHERE news_id = $1 ORDER BY created_at, id
	`, newsID)
	return images, err
}

func (r *imageRepo) FindByShowID(ctx context.Context, showID string) ([]model.Image, error) {
	var images []model.Image
	err := r.db.SelectContext(ctx, &images, `
		SELECT * FROM images WHERE show_id = $1 ORDER BY created_at, id
	`, showID)
	return images, err
}

func (r *imageRepo) FindByNewsIDs(ctx context.Context, newsIDs []string) (map[string][]model.Image, error) {
	return r.findByOwnerIDs(ctx, "news_id", newsIDs)
}

func (r *imageRepo) FindByShowIDs(ctx context.Context, showIDs []string) (map[string][]model.Image, error) {
	return r.findByOwnerIDs(ctx, "show_id", showIDs)
}

func (r *imageRepo) findByOwnerIDs(ctx context.Context, ownerColumn string, ids []string) (map[string][]model.Image, error) {
	grouped := make(map[string][]model.Image, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM images WHERE `+ownerColumn+` IN (?) ORDER BY created_at, id
	`, ids)
	if err != nil {
		return nil, err
	}

	var images []model.Image
	if err := r.db.SelectContext(ctx, &images, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, img := range images {
		owner := img.NewsID
		if ownerColumn == "show_id" {
			owner = img.ShowID
		}
		if owner != nil {
			grouped[*owner] = append(grouped[*owner], img)
		}
	}
	return grouped, nil
}

func (r *imageRepo) CreateForNews(ctx context.Context, newsID string, params model.CreateImageParams) (*model.Image, error) {
	var img model.Image
	err := r.db.GetContext(ctx, &img, `
		INSERT INTO images (news_id, url, alt, public_id)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, newsID, params.URL, params.Alt, params.PublicID)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepo) CreateForShow(ctx context.Context, showID string, params model.CreateImageParams) (*model.Image, error) {
	var img model.Image
	err := r.db.GetContext(ctx, &img, `
		INSERT INTO images (show_id, url, alt, public_id)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, showID, params.URL, params.Alt, params.PublicID)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepo) DeleteByNewsID(ctx context.Context, newsID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE news_id = $1`, newsID)
	return err
}

func (r *imageRepo) DeleteByShowID(ctx context.Context, showID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE show_id = $1`, showID)
	return err
}
