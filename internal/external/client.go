package external

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// doGet issues a GET request and buffers the whole response body; provider
// payloads are kilobytes at most. The body is returned even on non-2xx
// statuses so callers can decode provider error schemas.
func doGet(ctx context.Context, client *http.Client, reqURL string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, &models.InvalidURLError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &models.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &models.TransportError{Err: err}
	}

	return body, resp.StatusCode, nil
}

// isSuccess reports whether an HTTP status code is 2xx
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// encodeQuery joins key=value pairs in the given order. url.Values.Encode
// sorts keys alphabetically, which would break byte-exact parity with the
// documented provider URLs.
func encodeQuery(pairs ...[2]string) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
