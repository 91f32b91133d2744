package pdfx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// ErrDownload marks a failed source document fetch
var ErrDownload = errors.New("pdf download failed")

// Fetcher retrieves a source document
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Downloader fetches PDFs over HTTP through a circuit breaker
type Downloader struct {
	http     *resty.Client
	circuit  *patterns.CircuitBreakerWrapper
	maxBytes int64
}

// NewDownloader creates a downloader; maxBytes <= 0 disables the size check
func NewDownloader(timeout time.Duration, maxBytes int64, service string) *Downloader {
	if timeout <= 0 {
		timeout = patterns.SlowServiceTimeout
	}
	return &Downloader{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
		circuit:  patterns.NewCircuitBreaker("PDFSource", service),
		maxBytes: maxBytes,
	}
}

// Circuit exposes the breaker for status reporting
func (d *Downloader) Circuit() *patterns.CircuitBreakerWrapper {
	return d.circuit
}

// Fetch downloads url and returns its body
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	log.WithField("url", url).Info("Downloading PDF")

	out, err := d.circuit.Execute(func() (interface{}, error) {
		resp, httpErr := d.http.R().SetContext(ctx).Get(url)
		if httpErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrDownload, httpErr)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("%w: %d %s", ErrDownload, resp.StatusCode(), http.StatusText(resp.StatusCode()))
		}
		return resp.Body(), nil
	})
	if err != nil {
		return nil, patterns.FormatError("PDFSource", err)
	}

	body := out.([]byte)
	if d.maxBytes > 0 && int64(len(body)) > d.maxBytes {
		return nil, fmt.Errorf("%w: document is %d bytes, limit is %d", ErrDownload, len(body), d.maxBytes)
	}
	return body, nil
}
