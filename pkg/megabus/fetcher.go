package megabus

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// FetchError is returned when a journey results page could not be
// retrieved, either because the request itself failed or because the site
// answered with a non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PageFetcher retrieves raw journey results markup over HTTP. The zero
// value uses http.DefaultClient.
type PageFetcher struct {
	Client *http.Client
}

// FetchPage performs a GET against url and returns the response body as
// text. Any failure to obtain a body is terminal for this request; there is
// no retry.
func (f *PageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	log.Debug().Str("url", url).Int("bytes", len(bodyBytes)).Msg("Fetched journey results page")

	return string(bodyBytes), nil
}
