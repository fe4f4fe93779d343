package handlers

import (
	"net/http"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/viagemtrack/travelog/internal/models"
)

// FlagProvider defines the interface that the flag facade must implement.
type FlagProvider interface {
	URLs(countryCode string) models.FlagURLs
}

func validFlagCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NewFlagsHandler returns an HTTP handler for flag image URLs.
// @Summary Get flag URLs for a country
// @Description Returns the flag image URLs at the supported sizes. No network call is made; any two-letter code yields URLs.
// @Tags external
// @Produce json
// @Param code path string true "ISO-3166 alpha-2 code"
// @Success 200 {object} models.FlagURLs "Flag URLs"
// @Failure 400 {object} handlers.ErrorResponse "Invalid country code"
// @Router /api/external/flags/{code} [get]
func NewFlagsHandler(flags FlagProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if !validFlagCode(code) {
			writeError(w, http.StatusBadRequest, "Invalid country code")
			return
		}
		writeJSON(w, http.StatusOK, flags.URLs(code))
	}
}
