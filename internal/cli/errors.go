package cli

import (
	"errors"
	"io/fs"

	"github.com/akarlsons/racetime-export/internal/competition"
	"github.com/akarlsons/racetime-export/internal/scraper"
)

// errUsage tags errors caused by bad or conflicting command-line arguments.
var errUsage = errors.New("usage error")

// classify names the failure category of a pipeline error: "network error",
// "parse error", "format error" or "i/o error". Usage errors and errors
// outside the taxonomy yield "", their message stands on its own.
func classify(err error) string {
	var fetchErr *scraper.FetchError
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, errUsage):
		return ""
	case errors.As(err, &fetchErr):
		return "network error"
	case errors.Is(err, scraper.ErrNoResultsTable):
		return "parse error"
	case errors.Is(err, competition.ErrInvalidURL):
		return "format error"
	case errors.As(err, &pathErr):
		return "i/o error"
	}
	return ""
}
