package pdfx

import (
	"context"
	"errors"

	"github.com/ashendes/order-sidebar/internal/metrics"
	"github.com/ashendes/order-sidebar/internal/patterns"
	log "github.com/sirupsen/logrus"
)

// Service downloads a document and extracts pages from it, bounded by a bulkhead
type Service struct {
	fetcher   Fetcher
	extractor PageExtractor
	bulkhead  *patterns.Bulkhead
}

// NewService wires a fetcher and extractor behind a bulkhead
func NewService(fetcher Fetcher, extractor PageExtractor, bulkhead *patterns.Bulkhead) *Service {
	return &Service{fetcher: fetcher, extractor: extractor, bulkhead: bulkhead}
}

// ExtractFromURL fetches url and returns the requested pages as a new document
func (s *Service) ExtractFromURL(ctx context.Context, url string, pages []int) (*Result, error) {
	var res *Result
	err := s.bulkhead.Execute(ctx, func() error {
		src, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return err
		}
		res, err = s.extractor.Extract(ctx, src, pages)
		return err
	})
	if err != nil {
		metrics.PDFExtractionsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}

	metrics.PDFExtractionsTotal.WithLabelValues("success").Inc()
	metrics.PDFPagesExtracted.Observe(float64(len(res.Pages)))
	log.WithFields(log.Fields{
		"pages":       res.Pages,
		"total_pages": res.TotalPages,
		"bytes":       len(res.Data),
	}).Info("Extracted PDF pages")
	return res, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrNoValidPages):
		return "no_valid_pages"
	case errors.Is(err, ErrDownload), errors.Is(err, patterns.ErrCircuitOpen):
		return "download_failed"
	case errors.Is(err, patterns.ErrBulkheadFull):
		return "rejected"
	default:
		return "failed"
	}
}
