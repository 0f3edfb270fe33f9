package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
)

type MediaPhotoRepository interface {
	FindAll(ctx context.Context) ([]model.MediaPhoto, error)
	FindByID(ctx context.Context, id string) (*model.MediaPhoto, error)
	Create(ctx context.Context, params model.CreateMediaPhotoParams) (*model.MediaPhoto, error)
	Delete(ctx context.Context, id string) error
	WithTx(tx *sqlx.Tx) MediaPhotoRepository
}

type mediaPhotoRepo struct {
	db database.DBTX
}

func NewMediaPhotoRepository(db database.DBTX) MediaPhotoRepository {
	return &mediaPhotoRepo{db: db}
}

func (r *mediaPhotoRepo) WithTx(tx *sqlx.Tx) MediaPhotoRepository {
	return &mediaPhotoRepo{db: tx}
}

func (r *mediaPhotoRepo) FindAll(ctx context.Context) ([]model.MediaPhoto, error) {
	var photos []model.MediaPhoto
	err := r.db.SelectContext(ctx, &photos, `
		SELECT * FROM media_photos
		ORDER BY created_at DESC, id DESC
	`)
	return photos, err
}

func (r *mediaPhotoRepo) FindByID(ctx context.Context, id string) (*model.MediaPhoto, error) {
	var photo model.MediaPhoto
	err := r.db.GetContext(ctx, &photo, `SELECT * FROM media_photos WHERE id = $1`, id)
	return HandleNotFound(&photo, err)
}

func (r *mediaPhotoRepo) Create(ctx context.Context, params model.CreateMediaPhotoParams) (*model.MediaPhoto, error) {
	var photo model.MediaPhoto
	err := r.db.GetContext(ctx, &photo, `
		INSERT INTO media_photos (url, title, public_id)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.URL, params.Title, params.PublicID)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *mediaPhotoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM media_photos WHERE id = $1`, id)
	return err
}
