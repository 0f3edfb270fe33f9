package service

import (
	"context"
	"strings"

	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/model"
	"github.com/mobosolo/jdr/internal/repository"
	"github.com/mobosolo/jdr/internal/util"
)

// ContactInput carries the raw public contact form fields.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactService struct {
	messages repository.ContactMessageRepository
}

func NewContactService(messages repository.ContactMessageRepository) *ContactService {
	return &ContactService{messages: messages}
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	return messages, nil
}

func (s *ContactService) Create(ctx context.Context, input ContactInput) (*model.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	var fields []string
	if name == "" || tooLong(name, maxNameLen) {
		fields = append(fields, "name")
	}
	if email == "" || tooLong(email, maxEmailLen) || !isValidEmail(email) {
		fields = append(fields, "email")
	}
	if message == "" || tooLong(message, maxMessageLen) {
		fields = append(fields, "message")
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	created, err := s.messages.Create(ctx, model.CreateContactMessageParams{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return created, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if !util.IsValidUUID(id) {
		return apperrors.NotFound("Message")
	}

	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if message == nil {
		return apperrors.NotFound("Message")
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
