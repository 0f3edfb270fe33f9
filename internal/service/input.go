// Package service implements the business rules behind the HTTP API:
// input validation, slug assignment, transactional writes and
// best-effort cleanup of replaced image assets.
package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/imagehost"
	"github.com/mobosolo/jdr/internal/model"
)

// Field length caps enforced on all admin and public form input.
const (
	maxTitleLen       = 150
	maxNewsContentLen = 5000
	maxLocationLen    = 200
	maxDescriptionLen = 2000
	maxNameLen        = 100
	maxEmailLen       = 200
	maxMessageLen     = 2000
	maxURLLen         = 500
)

// TxRunner runs a function inside a database transaction. *database.DB
// satisfies it; tests substitute a fake that calls the function
// directly.
type TxRunner interface {
	WithTx(ctx context.Context, fn database.TxFunc) error
}

// ImageInput is the optional image attachment on news and show writes.
type ImageInput struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	PublicID string `json:"publicId"`
}

func (in *ImageInput) params() *model.CreateImageParams {
	if in == nil {
		return nil
	}
	p := &model.CreateImageParams{URL: strings.TrimSpace(in.URL)}
	if alt := strings.TrimSpace(in.Alt); alt != "" {
		p.Alt = &alt
	}
	if publicID := strings.TrimSpace(in.PublicID); publicID != "" {
		p.PublicID = &publicID
	}
	return p
}

// validateImage returns the offending field names of an optional image
// attachment, or nothing when the attachment is absent or valid.
func validateImage(in *ImageInput) []string {
	if in == nil {
		return nil
	}
	url := strings.TrimSpace(in.URL)
	if url == "" || tooLong(url, maxURLLen) {
		return []string{"image.url"}
	}
	return nil
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts either a full timestamp or a bare calendar date.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// cleanupAssets removes replaced uploads from the image host. Failures
// are logged and swallowed: the database is already consistent and a
// leftover remote asset must never fail the request.
func cleanupAssets(ctx context.Context, host imagehost.Deleter, publicIDs []string) {
	for _, id := range publicIDs {
		if err := host.DeleteAsset(ctx, id); err != nil {
			log.Warn().Err(err).Str("public_id", id).Msg("image host cleanup failed")
		}
	}
}

// collectPublicIDs gathers the remote asset ids of a set of owned
// images so they can be cleaned up after the rows are gone.
func collectPublicIDs(images []model.Image) []string {
	var ids []string
	for _, img := range images {
		if img.PublicID != nil && *img.PublicID != "" {
			ids = append(ids, *img.PublicID)
		}
	}
	return ids
}
