package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultUserAgent mimics a desktop browser. The results site serves
	// different markup to clients that identify as scripts.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second
)

// FetchError reports a failed page retrieval.
type FetchError struct {
	URL        string
	StatusCode int   // zero when no response was received
	Err        error // underlying transport error, if any
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches competition pages over HTTP.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a Client with the given request timeout and User-Agent
// header. Zero values fall back to DefaultTimeout and DefaultUserAgent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchPage fetches url and returns the page HTML. Transport failures and
// non-OK statuses are reported as *FetchError.
func (c *Client) FetchPage(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return string(body), nil
}
