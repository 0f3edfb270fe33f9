package service

import (
	"context"
	"strings"

	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/imagehost"
	"github.com/mobosolo/jdr/internal/model"
	"github.com/mobosolo/jdr/internal/repository"
	"github.com/mobosolo/jdr/internal/util"
)

// MediaInput carries the raw admin form fields for a gallery photo.
type MediaInput struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	PublicID string `json:"publicId"`
}

type MediaService struct {
	photos    repository.MediaPhotoRepository
	imageHost imagehost.Deleter
}

func NewMediaService(photos repository.MediaPhotoRepository, imageHost imagehost.Deleter) *MediaService {
	return &MediaService{photos: photos, imageHost: imageHost}
}

func (s *MediaService) List(ctx context.Context) ([]model.MediaPhoto, error) {
	photos, err := s.photos.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if photos == nil {
		photos = []model.MediaPhoto{}
	}
	return photos, nil
}

func (s *MediaService) Create(ctx context.Context, input MediaInput) (*model.MediaPhoto, error) {
	url := strings.TrimSpace(input.URL)
	title := strings.TrimSpace(input.Title)

	var fields []string
	if url == "" || tooLong(url, maxURLLen) {
		fields = append(fields, "url")
	}
	if tooLong(title, maxTitleLen) {
		fields = append(fields, "title")
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	params := model.CreateMediaPhotoParams{URL: url}
	if title != "" {
		params.Title = &title
	}
	if publicID := strings.TrimSpace(input.PublicID); publicID != "" {
		params.PublicID = &publicID
	}

	photo, err := s.photos.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return photo, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	if !util.IsValidUUID(id) {
		return apperrors.NotFound("Photo")
	}

	photo, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if photo == nil {
		return apperrors.NotFound("Photo")
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		return apperrors.Database(err)
	}

	if photo.PublicID != nil && *photo.PublicID != "" {
		cleanupAssets(ctx, s.imageHost, []string{*photo.PublicID})
	}
	return nil
}
