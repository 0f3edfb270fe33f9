package service

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/imagehost"
	"github.com/mobosolo/jdr/internal/model"
	"github.com/mobosolo/jdr/internal/repository"
	"github.com/mobosolo/jdr/internal/slug"
	"github.com/mobosolo/jdr/internal/util"
)

// NewsInput carries the raw admin form fields for a news create or
// update. Dates arrive as strings and are parsed during validation.
type NewsInput struct {
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	PublishedAt string      `json:"publishedAt"`
	Image       *ImageInput `json:"image"`
}

type NewsService struct {
	tx        TxRunner
	news      repository.NewsRepository
	images    repository.ImageRepository
	slugs     *slug.Resolver
	imageHost imagehost.Deleter
}

func NewNewsService(tx TxRunner, news repository.NewsRepository, images repository.ImageRepository, imageHost imagehost.Deleter) *NewsService {
	return &NewsService{
		tx:        tx,
		news:      news,
		images:    images,
		slugs:     slug.NewResolver(news),
		imageHost: imageHost,
	}
}

func (s *NewsService) List(ctx context.Context, limit int) ([]model.News, error) {
	items, err := s.news.FindAll(ctx, limit)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	grouped, err := s.images.FindByNewsIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for i := range items {
		if imgs, ok := grouped[items[i].ID]; ok {
			items[i].Images = imgs
		} else {
			items[i].Images = []model.Image{}
		}
	}
	return items, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*model.News, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("News")
	}

	item, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if item == nil {
		return nil, apperrors.NotFound("News")
	}

	images, err := s.images.FindByNewsID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if images == nil {
		images = []model.Image{}
	}
	item.Images = images
	return item, nil
}

func (s *NewsService) Create(ctx context.Context, input NewsInput) (*model.News, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	var fields []string
	if title == "" || tooLong(title, maxTitleLen) {
		fields = append(fields, "title")
	}
	if content == "" || tooLong(content, maxNewsContentLen) {
		fields = append(fields, "content")
	}

	publishedAt := time.Now()
	if raw := strings.TrimSpace(input.PublishedAt); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			fields = append(fields, "publishedAt")
		} else {
			publishedAt = t
		}
	}

	fields = append(fields, validateImage(input.Image)...)
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	// The probe loop in the resolver is only a fast path: a concurrent
	// create can still win the same slug, in which case the unique
	// constraint fires and one retry resolves a fresh one.
	var created *model.News
	for attempt := 0; ; attempt++ {
		slugValue, err := s.slugs.Unique(ctx, title)
		if err != nil {
			return nil, apperrors.Database(err)
		}

		err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
			item, err := s.news.WithTx(tx).Create(ctx, model.CreateNewsParams{
				Title:       title,
				Slug:        slugValue,
				Content:     content,
				PublishedAt: publishedAt,
			})
			if err != nil {
				return err
			}

			item.Images = []model.Image{}
			if params := input.Image.params(); params != nil {
				img, err := s.images.WithTx(tx).CreateForNews(ctx, item.ID, *params)
				if err != nil {
					return err
				}
				item.Images = []model.Image{*img}
			}
			created = item
			return nil
		})
		if err == nil {
			return created, nil
		}
		if repository.IsUniqueViolation(err) && attempt == 0 {
			continue
		}
		return nil, apperrors.Database(err)
	}
}

func (s *NewsService) Update(ctx context.Context, id string, input NewsInput) (*model.News, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("News")
	}

	existing, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("News")
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	var fields []string
	if title == "" || tooLong(title, maxTitleLen) {
		fields = append(fields, "title")
	}
	if content == "" || tooLong(content, maxNewsContentLen) {
		fields = append(fields, "content")
	}

	publishedAt := existing.PublishedAt
	if raw := strings.TrimSpace(input.PublishedAt); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			fields = append(fields, "publishedAt")
		} else {
			publishedAt = t
		}
	}

	fields = append(fields, validateImage(input.Image)...)
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	// The slug only moves when the title's slug actually changed, so a
	// cosmetic retitle keeps the published URL stable.
	newSlug := existing.Slug
	if title != existing.Title && slug.MakeWithFallback(title) != existing.Slug {
		resolved, err := s.slugs.Unique(ctx, title)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		newSlug = resolved
	}

	var staleAssets []string
	if input.Image != nil {
		current, err := s.images.FindByNewsID(ctx, id)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		staleAssets = collectPublicIDs(current)
	}

	var updated *model.News
	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		newsRepo := s.news.WithTx(tx)
		imageRepo := s.images.WithTx(tx)

		item, err := newsRepo.Update(ctx, id, model.UpdateNewsParams{
			Title:       title,
			Content:     content,
			PublishedAt: publishedAt,
		})
		if err != nil {
			return err
		}
		if item == nil {
			return apperrors.NotFound("News")
		}

		if newSlug != existing.Slug {
			if err := newsRepo.UpdateSlug(ctx, id, newSlug); err != nil {
				return err
			}
			item.Slug = newSlug
		}

		if input.Image != nil {
			if err := imageRepo.DeleteByNewsID(ctx, id); err != nil {
				return err
			}
			img, err := imageRepo.CreateForNews(ctx, id, *input.Image.params())
			if err != nil {
				return err
			}
			item.Images = []model.Image{*img}
		} else {
			images, err := imageRepo.FindByNewsID(ctx, id)
			if err != nil {
				return err
			}
			if images == nil {
				images = []model.Image{}
			}
			item.Images = images
		}
		updated = item
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.Database(err)
	}

	cleanupAssets(ctx, s.imageHost, staleAssets)
	return updated, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if !util.IsValidUUID(id) {
		return apperrors.NotFound("News")
	}

	existing, err := s.news.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if existing == nil {
		return apperrors.NotFound("News")
	}

	images, err := s.images.FindByNewsID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	staleAssets := collectPublicIDs(images)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.images.WithTx(tx).DeleteByNewsID(ctx, id); err != nil {
			return err
		}
		return s.news.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return apperrors.Database(err)
	}

	cleanupAssets(ctx, s.imageHost, staleAssets)
	return nil
}
