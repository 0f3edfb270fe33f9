package handler

import (
	"net/http"
	"strconv"

	"github.com/mobosolo/jdr/internal/config"
)

// parseLimit reads the optional ?limit query parameter. A missing or
// malformed value means no limit at all (0); a supplied value is
// clamped to the cap.
func parseLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		return 0
	}
	if limit > config.MaxListLimit {
		return config.MaxListLimit
	}
	return limit
}
