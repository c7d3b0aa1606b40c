package shorten

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEndpoint is the TinyURL creation API. It answers a GET with the
// short link as a plain-text body.
const DefaultEndpoint = "https://tinyurl.com/api-create.php"

// maxEncodedLen caps the percent-encoded input so the request URL stays
// within what the API reliably accepts.
const maxEncodedLen = 900

// maxBodySize bounds how much of the API response is buffered. Short links
// are a few dozen bytes; anything near this limit is garbage anyway.
const maxBodySize = 8 * 1024

// ErrTooLong is returned when the encoded input exceeds maxEncodedLen.
// No request is made in that case.
var ErrTooLong = errors.New("URL too long for API")

// Shortener shortens URLs through a TinyURL-compatible endpoint.
type Shortener struct {
	client   *http.Client
	endpoint string
}

// New creates a Shortener talking to the default TinyURL endpoint.
func New(client *http.Client) *Shortener {
	return &Shortener{client: client, endpoint: DefaultEndpoint}
}

// NewWithEndpoint creates a Shortener against a custom endpoint.
func NewWithEndpoint(client *http.Client, endpoint string) *Shortener {
	return &Shortener{client: client, endpoint: endpoint}
}

// Shorten requests a short link for longURL and returns it.
func (s *Shortener) Shorten(ctx context.Context, longURL string) (string, error) {
	parsed, err := url.Parse(longURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", longURL, err)
	}
	if !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid URL %q: only absolute http/https URLs can be shortened", longURL)
	}

	encoded := url.QueryEscape(longURL)
	if len(encoded) > maxEncodedLen {
		return "", ErrTooLong
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?url="+encoded, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not shorten URL: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("could not read API response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("shortener API returned status %d", resp.StatusCode)
	}

	short := strings.TrimSpace(string(body))
	shortURL, err := url.Parse(short)
	if err != nil || !shortURL.IsAbs() {
		return "", fmt.Errorf("shortener API returned an unusable response: %q", short)
	}
	return shortURL.String(), nil
}
