package service

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/imagehost"
	"github.com/mobosolo/jdr/internal/model"
	"github.com/mobosolo/jdr/internal/repository"
	"github.com/mobosolo/jdr/internal/util"
)

// ShowInput carries the raw admin form fields for a show create or
// update.
type ShowInput struct {
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Image       *ImageInput `json:"image"`
}

type ShowService struct {
	tx        TxRunner
	shows     repository.ShowRepository
	images    repository.ImageRepository
	imageHost imagehost.Deleter
}

func NewShowService(tx TxRunner, shows repository.ShowRepository, images repository.ImageRepository, imageHost imagehost.Deleter) *ShowService {
	return &ShowService{
		tx:        tx,
		shows:     shows,
		images:    images,
		imageHost: imageHost,
	}
}

func (s *ShowService) List(ctx context.Context) ([]model.Show, error) {
	shows, err := s.shows.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	ids := make([]string, len(shows))
	for i, show := range shows {
		ids[i] = show.ID
	}
	grouped, err := s.images.FindByShowIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for i := range shows {
		if imgs, ok := grouped[shows[i].ID]; ok {
			shows[i].Images = imgs
		} else {
			shows[i].Images = []model.Image{}
		}
	}
	return shows, nil
}

func (s *ShowService) Get(ctx context.Context, id string) (*model.Show, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("Show")
	}

	show, err := s.shows.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if show == nil {
		return nil, apperrors.NotFound("Show")
	}

	images, err := s.images.FindByShowID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if images == nil {
		images = []model.Image{}
	}
	show.Images = images
	return show, nil
}

// validateShowInput normalizes the form fields and collects every
// offending field name. The date pair is cross-checked: an end before
// the start flags both fields.
func validateShowInput(input ShowInput) (model.CreateShowParams, []string) {
	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	description := strings.TrimSpace(input.Description)

	var fields []string
	if title == "" || tooLong(title, maxTitleLen) {
		fields = append(fields, "title")
	}
	if location == "" || tooLong(location, maxLocationLen) {
		fields = append(fields, "location")
	}
	if description == "" || tooLong(description, maxDescriptionLen) {
		fields = append(fields, "description")
	}

	params := model.CreateShowParams{
		Title:       title,
		Location:    location,
		Description: description,
	}

	startOK, endOK := false, false
	if raw := strings.TrimSpace(input.StartDate); raw != "" {
		if t, ok := parseDate(raw); ok {
			params.StartDate = t
			startOK = true
		}
	}
	if !startOK {
		fields = append(fields, "startDate")
	}
	if raw := strings.TrimSpace(input.EndDate); raw != "" {
		if t, ok := parseDate(raw); ok {
			params.EndDate = t
			endOK = true
		}
	}
	if !endOK {
		fields = append(fields, "endDate")
	}
	if startOK && endOK && params.EndDate.Before(params.StartDate) {
		fields = append(fields, "startDate", "endDate")
	}

	fields = append(fields, validateImage(input.Image)...)
	return params, fields
}

func (s *ShowService) Create(ctx context.Context, input ShowInput) (*model.Show, error) {
	params, fields := validateShowInput(input)
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	var created *model.Show
	err := s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		show, err := s.shows.WithTx(tx).Create(ctx, params)
		if err != nil {
			return err
		}

		show.Images = []model.Image{}
		if imageParams := input.Image.params(); imageParams != nil {
			img, err := s.images.WithTx(tx).CreateForShow(ctx, show.ID, *imageParams)
			if err != nil {
				return err
			}
			show.Images = []model.Image{*img}
		}
		created = show
		return nil
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return created, nil
}

func (s *ShowService) Update(ctx context.Context, id string, input ShowInput) (*model.Show, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("Show")
	}

	params, fields := validateShowInput(input)
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	var staleAssets []string
	if input.Image != nil {
		current, err := s.images.FindByShowID(ctx, id)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		staleAssets = collectPublicIDs(current)
	}

	var updated *model.Show
	err := s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		showRepo := s.shows.WithTx(tx)
		imageRepo := s.images.WithTx(tx)

		show, err := showRepo.Update(ctx, id, model.UpdateShowParams(params))
		if err != nil {
			return err
		}
		if show == nil {
			return apperrors.NotFound("Show")
		}

		if input.Image != nil {
			if err := imageRepo.DeleteByShowID(ctx, id); err != nil {
				return err
			}
			img, err := imageRepo.CreateForShow(ctx, id, *input.Image.params())
			if err != nil {
				return err
			}
			show.Images = []model.Image{*img}
		} else {
			images, err := imageRepo.FindByShowID(ctx, id)
			if err != nil {
				return err
			}
			if images == nil {
				images = []model.Image{}
			}
			show.Images = images
		}
		updated = show
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

func (s *ShowService) Delete(ctx context.Context, id string) error {
	if !util.IsValidUUID(id) {
		return apperrors.NotFound("Show")
	}

	existing, err := s.shows.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if existing == nil {
		return apperrors.NotFound("Show")
	}

	images, err := s.images.FindByShowID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	staleAssets := collectPublicIDs(images)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.images.WithTx(tx).DeleteByShowID(ctx, id); err != nil {
			return err
		}
		return s.shows.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return apperrors.Database(err)
	}

	cleanupAssets(ctx, s.imageHost, staleAssets)
	return nil
}
