package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/httputil"
	"github.com/mobosolo/jdr/internal/model"
)

// excerptLength is how much of an article the public list endpoint
// exposes before the frontend shows a "read more" link.
const excerptLength = 180

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeDatabase, apperrors.ErrCodeInternal,
		apperrors.ErrCodeMisconfigured, apperrors.ErrCodeExternal:
		log.Error().Err(err).Msg("request failed")
	}
	httputil.WriteError(w, err)
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatImages(images []model.Image) []map[string]any {
	out := make([]map[string]any, 0, len(images))
	for _, img := range images {
		var alt any
		if img.Alt != nil {
			alt = *img.Alt
		}
		out = append(out, map[string]any{
			"url": img.URL,
			"alt": alt,
		})
	}
	return out
}

func formatNewsSummary(item model.News) map[string]any {
	var image any
	if len(item.Images) > 0 {
		image = item.Images[0].URL
	}
	return map[string]any{
		"id":      item.ID,
		"title":   item.Title,
		"slug":    item.Slug,
		"excerpt": excerpt(item.Content),
		"date":    formatDate(item.PublishedAt),
		"image":   image,
	}
}

func formatNewsDetail(item model.News) map[string]any {
	return map[string]any{
		"id":          item.ID,
		"title":       item.Title,
		"slug":        item.Slug,
		"content":     item.Content,
		"date":        formatDate(item.PublishedAt),
		"publishedAt": item.PublishedAt.Format(time.RFC3339),
		"images":      formatImages(item.Images),
	}
}

func formatShow(show model.Show, now time.Time) map[string]any {
	return map[string]any{
		"id":          show.ID,
		"title":       show.Title,
		"location":    show.Location,
		"description": show.Description,
		"startDate":   formatDate(show.StartDate),
		"endDate":     formatDate(show.EndDate),
		"status":      show.Status(now),
		"images":      formatImages(show.Images),
	}
}

func formatMediaPhoto(photo model.MediaPhoto) map[string]any {
	var title any
	if photo.Title != nil {
		title = *photo.Title
	}
	return map[string]any{
		"id":        photo.ID,
		"url":       photo.URL,
		"title":     title,
		"createdAt": photo.CreatedAt.Format(time.RFC3339),
	}
}

func formatContactMessage(message model.ContactMessage) map[string]any {
	return map[string]any{
		"id":        message.ID,
		"name":      message.Name,
		"email":     message.Email,
		"message":   message.Message,
		"createdAt": message.CreatedAt.Format(time.RFC3339),
	}
}
