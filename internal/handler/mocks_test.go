package handler

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/model"
	"github.com/mobosolo/jdr/internal/repository"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(_ context.Context, fn database.TxFunc) error {
	return fn(nil)
}

type noopDeleter struct{}

func (noopDeleter) DeleteAsset(context.Context, string) error { return nil }

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) FindAll(ctx context.Context, limit int) ([]model.News, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *mockNewsRepo) FindByID(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *mockNewsRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsRepo) Create(ctx context.Context, params model.CreateNewsParams) (*model.News, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *mockNewsRepo) Update(ctx context.Context, id string, params model.UpdateNewsParams) (*model.News, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *mockNewsRepo) UpdateSlug(ctx context.Context, id, slug string) error {
	args := m.Called(ctx, id, slug)
	return args.Error(0)
}

func (m *mockNewsRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockNewsRepo) WithTx(*sqlx.Tx) repository.NewsRepository { return m }

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) FindByNewsID(ctx context.Context, newsID string) ([]model.Image, error) {
	args := m.Called(ctx, newsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *mockImageRepo) FindByShowID(ctx context.Context, showID string) ([]model.Image, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *mockImageRepo) FindByNewsIDs(ctx context.Context, newsIDs []string) (map[string][]model.Image, error) {
	args := m.Called(ctx, newsIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Image), args.Error(1)
}

func (m *mockImageRepo) FindByShowIDs(ctx context.Context, showIDs []string) (map[string][]model.Image, error) {
	args := m.Called(ctx, showIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Image), args.Error(1)
}

func (m *mockImageRepo) CreateForNews(ctx context.Context, newsID string, params model.CreateImageParams) (*model.Image, error) {
	args := m.Called(ctx, newsID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *mockImageRepo) CreateForShow(ctx context.Context, showID string, params model.CreateImageParams) (*model.Image, error) {
	args := m.Called(ctx, showID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *mockImageRepo) DeleteByNewsID(ctx context.Context, newsID string) error {
	args := m.Called(ctx, newsID)
	return args.Error(0)
}

func (m *mockImageRepo) DeleteByShowID(ctx context.Context, showID string) error {
	args := m.Called(ctx, showID)
	return args.Error(0)
}

func (m *mockImageRepo) WithTx(*sqlx.Tx) repository.ImageRepository { return m }

type mockShowRepo struct {
	mock.Mock
}

func (m *mockShowRepo) FindAll(ctx context.Context) ([]model.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Show), args.Error(1)
}

func (m *mockShowRepo) FindByID(ctx context.Context, id string) (*model.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *mockShowRepo) Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *mockShowRepo) Update(ctx context.Context, id string, params model.UpdateShowParams) (*model.Show, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *mockShowRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockShowRepo) WithTx(*sqlx.Tx) repository.ShowRepository { return m }

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) FindAll(ctx context.Context) ([]model.MediaPhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaPhoto), args.Error(1)
}

func (m *mockMediaRepo) FindByID(ctx context.Context, id string) (*model.MediaPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaPhoto), args.Error(1)
}

func (m *mockMediaRepo) Create(ctx context.Context, params model.CreateMediaPhotoParams) (*model.MediaPhoto, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaPhoto), args.Error(1)
}

func (m *mockMediaRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMediaRepo) WithTx(*sqlx.Tx) repository.MediaPhotoRepository { return m }

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) FindAll(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) Create(ctx context.Context, params model.CreateContactMessageParams) (*model.ContactMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContactRepo) WithTx(*sqlx.Tx) repository.ContactMessageRepository { return m }
