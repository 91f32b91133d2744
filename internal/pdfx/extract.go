package pdfx

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Lambda and container filesystems are read-only outside /tmp.
	api.DisableConfigDir()
}

// Result is a newly built document holding only the extracted pages
type Result struct {
	Data       []byte
	Pages      []int
	TotalPages int
}

// PageExtractor copies a page subset of a document into a new document
type PageExtractor interface {
	Extract(ctx context.Context, src []byte, pages []int) (*Result, error)
}

// Extractor implements PageExtractor with pdfcpu
type Extractor struct {
	conf *model.Configuration
}

// NewExtractor creates an extractor that tolerates slightly malformed files
func NewExtractor() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{conf: conf}
}

// Extract returns a document made of the requested 1-based pages. Pages
// outside the document are dropped; if none remain a *NoValidPagesError is
// returned.
func (e *Extractor) Extract(ctx context.Context, src []byte, pages []int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total, err := api.PageCount(bytes.NewReader(src), e.conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	valid := NormalizePages(pages, total)
	if len(valid) == 0 {
		return nil, &NoValidPagesError{TotalPages: total, Requested: pages}
	}

	selection := make([]string, len(valid))
	for i, p := range valid {
		selection[i] = strconv.Itoa(p)
	}

	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(src), &out, selection, e.conf); err != nil {
		return nil, fmt.Errorf("trim pdf: %w", err)
	}

	return &Result{Data: out.Bytes(), Pages: valid, TotalPages: total}, nil
}
