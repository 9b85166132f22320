// Package competition identifies competitions from their results page URLs.
//
// Results pages live at paths like /en/event/1022/competition/6422/results;
// the numeric event and competition ids are the only parts the exporter needs,
// the event id naming the per-competition output file in batch runs.
package competition

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidURL indicates a URL without the event/competition path segments.
var ErrInvalidURL = errors.New("not a competition results URL")

// urlPattern extracts the numeric ids from a results page path.
var urlPattern = regexp.MustCompile(`/event/(\d+)/competition/(\d+)`)

// Competition identifies one timed race on the results site.
type Competition struct {
	EventID       string
	CompetitionID string
	URL           string
}

// Parse extracts the event and competition ids from a results page URL.
// URLs without both ids fail with ErrInvalidURL.
func Parse(rawURL string) (*Competition, error) {
	m := urlPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	return &Competition{
		EventID:       m[1],
		CompetitionID: m[2],
		URL:           rawURL,
	}, nil
}

// CSVFilename returns the output file name derived from the event id.
func (c *Competition) CSVFilename() string {
	return fmt.Sprintf("race_%s.csv", c.EventID)
}
