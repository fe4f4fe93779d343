package facades

import (
	"fmt"
	"strings"

	"github.com/viagemtrack/travelog/internal/models"
)

// FlagFacade builds flag image URLs from a CDN URL template. It is pure
// string templating: no network call is made and any syntactically valid
// two-letter code yields usable URLs.
type FlagFacade struct {
	baseURL string
}

// NewFlagFacade creates a new facade for the given CDN base URL.
func NewFlagFacade(baseURL string) *FlagFacade {
	return &FlagFacade{baseURL: baseURL}
}

// URL returns the PNG flag URL at the given width bucket (w20..w1280).
func (f *FlagFacade) URL(countryCode, size string) string {
	return fmt.Sprintf("%s/%s/%s.png", f.baseURL, size, strings.ToLower(countryCode))
}

// URLs returns the flag at the fixed set of sizes plus the SVG original.
func (f *FlagFacade) URLs(countryCode string) models.FlagURLs {
	code := strings.ToLower(countryCode)
	return models.FlagURLs{
		Small:  fmt.Sprintf("%s/w40/%s.png", f.baseURL, code),
		Medium: fmt.Sprintf("%s/w160/%s.png", f.baseURL, code),
		Large:  fmt.Sprintf("%s/w320/%s.png", f.baseURL, code),
		XLarge: fmt.Sprintf("%s/w640/%s.png", f.baseURL, code),
		SVG:    fmt.Sprintf("%s/%s.svg", f.baseURL, code),
	}
}
