// Package feed wires the parsing core to the network: byte retrieval,
// the asynchronous Loader, feed autodiscovery over HTML, and the default
// parser collection covering all supported formats.
package feed

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/feedcomb/syndication/app/syndication"
)

// DataRetriever fetches the raw bytes behind a URL. Failures are reported
// as transport-level error codes, never reinterpreted by the parsing
// layers.
type DataRetriever interface {
	Retrieve(ctx context.Context, url string) ([]byte, syndication.ErrorCode)
}

// HTTPRetriever fetches feeds over HTTP(S) with a per-request timeout.
type HTTPRetriever struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

var _ DataRetriever = (*HTTPRetriever)(nil)

func NewHTTPRetriever(userAgent string, timeout time.Duration) *HTTPRetriever {
	return &HTTPRetriever{
		client:    &http.Client{},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (r *HTTPRetriever) Retrieve(ctx context.Context, url string) ([]byte, syndication.ErrorCode) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, syndication.OtherRetrieverError
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, classifyRetrieveError(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, syndication.FileNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, syndication.OtherRetrieverError
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyRetrieveError(ctx, err)
	}

	return data, syndication.Success
}

// classifyRetrieveError maps a transport error onto the error code
// taxonomy. A deadline hit on the request context is a timeout; a
// cancellation of the caller's context is an abort.
func classifyRetrieveError(ctx context.Context, err error) syndication.ErrorCode {
	if errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled {
		return syndication.Aborted
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return syndication.Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return syndication.Timeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return syndication.UnknownHost
	}
	return syndication.OtherRetrieverError
}
