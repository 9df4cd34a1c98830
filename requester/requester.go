package requester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/felipemarinho97/nyaa-indexer/logging"
)

// ErrTransport is matched by every TransportError.
var ErrTransport = errors.New("transport error")

// ErrInvalidEncoding is wrapped by a TransportError whose body is not UTF-8.
var ErrInvalidEncoding = errors.New("response body is not valid UTF-8")

// ErrBodyTooLarge is wrapped by a TransportError whose body exceeds the limit.
var ErrBodyTooLarge = errors.New("response body too large")

const (
	DefaultMaxBodySize int64 = 16 << 20
	maxPrealloc        int64 = 1 << 20
)

// TransportError reports a failed fetch. StatusCode is zero when no response
// was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

type Requester struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

func NewRequester(timeout time.Duration) *Requester {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
	return NewRequesterWithClient(httpClient)
}

// NewRequesterWithClient uses the given client as is.
func NewRequesterWithClient(c *http.Client) *Requester {
	return &Requester{httpClient: c, userAgent: defaultUserAgent, maxBodySize: DefaultMaxBodySize}
}

func (i *Requester) SetUserAgent(ua string) {
	i.userAgent = ua
}

// SetMaxBodySize bounds the number of body bytes Fetch accepts.
func (i *Requester) SetMaxBodySize(n int64) {
	i.maxBodySize = n
}

// Fetch issues a single GET and returns the body as text.
func (i *Requester) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	spoofBrowserHeaders(req, i.userAgent)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	logging.DebugWithContext(ctx).
		Str("url", url).
		Int("status", resp.StatusCode).
		Msg("Listing fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if resp.ContentLength > i.maxBodySize {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: declared %d bytes", ErrBodyTooLarge, resp.ContentLength)}
	}

	// Content-Length is only a hint; the read below stays bounded either way.
	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(min(resp.ContentLength, maxPrealloc)))
	} else {
		buf.Grow(32 * 1024)
	}
	if _, err := io.Copy(&buf, io.LimitReader(resp.Body, i.maxBodySize+1)); err != nil {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(buf.Len()) > i.maxBodySize {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, i.maxBodySize)}
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: ErrInvalidEncoding}
	}
	return buf.String(), nil
}
