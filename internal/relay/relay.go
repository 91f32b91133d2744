// Package relay holds the request handling shared by the HTTP service and the
// serverless functions: order search, PDF page extraction, vendor email
// composition and search history.
package relay

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/ashendes/order-sidebar/internal/history"
	"github.com/ashendes/order-sidebar/internal/metrics"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/ashendes/order-sidebar/internal/pdfx"
	"github.com/ashendes/order-sidebar/internal/vendorapi"
	"github.com/ashendes/order-sidebar/internal/viewmodel"
	log "github.com/sirupsen/logrus"
)

// AnonymousUser identifies searches made without a teammate identity
const AnonymousUser = "anonymous"

// ErrBadRequest marks invalid caller input
var ErrBadRequest = errors.New("bad request")

// OrderFinder looks orders up in the vendor API
type OrderFinder interface {
	FindOrders(ctx context.Context, term string) (*vendorapi.Result, error)
}

// SearchTracker records search analytics
type SearchTracker interface {
	TrackSearch(ctx context.Context, term, username string)
}

// PageExtractor fetches a PDF and cuts pages out of it
type PageExtractor interface {
	ExtractFromURL(ctx context.Context, url string, pages []int) (*pdfx.Result, error)
}

// Relay implements the relay operations independent of transport
type Relay struct {
	finder  OrderFinder
	tracker SearchTracker
	history *history.Recorder
	pdf     PageExtractor
}

// New creates a relay. tracker and recorder may be nil.
func New(finder OrderFinder, tracker SearchTracker, recorder *history.Recorder, pdf PageExtractor) *Relay {
	return &Relay{finder: finder, tracker: tracker, history: recorder, pdf: pdf}
}

// Search normalizes term, queries the vendor API and returns its raw JSON
func (r *Relay) Search(ctx context.Context, term, username string) ([]byte, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		metrics.SearchesTotal.WithLabelValues("validation_failed").Inc()
		return nil, badRequest("searchTerm is required")
	}
	username = identity(username)

	if r.history != nil {
		if _, err := r.history.Record(ctx, username, term); err != nil {
			log.WithField("username", username).Warn("Failed to record search history: ", err)
		}
	}

	query := vendorapi.NormalizeSearchTerm(term)
	res, err := r.finder.FindOrders(ctx, query)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if r.tracker != nil {
		r.tracker.TrackSearch(ctx, query, username)
	}

	metrics.SearchesTotal.WithLabelValues("success").Inc()
	metrics.OrdersReturned.Observe(float64(len(res.Orders)))
	log.WithFields(log.Fields{
		"term":     query,
		"username": username,
		"orders":   len(res.Orders),
	}).Info("Order search completed")

	return res.Raw, nil
}

// ExtractPages validates req and returns the extracted document
func (r *Relay) ExtractPages(ctx context.Context, req models.ExtractPagesRequest) (*models.ExtractPagesResponse, error) {
	if req.PDFURL == "" || req.Pages == nil {
		return nil, badRequest("Missing required parameters: pdfUrl, pages (array of page numbers)")
	}

	res, err := r.pdf.ExtractFromURL(ctx, req.PDFURL, req.Pages)
	if err != nil {
		return nil, err
	}

	filename := req.Filename
	if filename == "" {
		filename = pdfx.DefaultFilename(res.Pages)
	}
	return &models.ExtractPagesResponse{
		Success:        true,
		Filename:       filename,
		PDFData:        base64.StdEncoding.EncodeToString(res.Data),
		ExtractedPages: res.Pages,
		TotalPages:     res.TotalPages,
	}, nil
}

// Compose builds the vendor order email draft for req
func (r *Relay) Compose(req models.ComposeRequest) models.DraftContent {
	body := viewmodel.Compose(req.Order, viewmodel.NewSelection(req.Selected...), req.Annotations)
	if body == viewmodel.NoProductsSelected {
		metrics.VendorEmailsTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.VendorEmailsTotal.WithLabelValues("composed").Inc()
	}
	return viewmodel.Draft(body)
}

// History returns username's recent searches
func (r *Relay) History(ctx context.Context, username string) ([]string, error) {
	if r.history == nil {
		return []string{}, nil
	}
	terms, err := r.history.List(ctx, identity(username))
	if err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}

// ClearHistory forgets username's recent searches
func (r *Relay) ClearHistory(ctx context.Context, username string) error {
	if r.history == nil {
		return nil
	}
	return r.history.Clear(ctx, identity(username))
}

// StatusFor maps a relay error to an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, pdfx.ErrNoValidPages):
		return http.StatusBadRequest
	case errors.Is(err, patterns.ErrCircuitOpen), errors.Is(err, patterns.ErrBulkheadFull):
		return http.StatusServiceUnavailable
	case errors.Is(err, vendorapi.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody maps a relay error to the JSON error body callers see
func ErrorBody(err error) models.ErrorResponse {
	var nv *pdfx.NoValidPagesError
	switch {
	case errors.As(err, &nv):
		return models.ErrorResponse{Error: nv.Error()}
	case errors.Is(err, ErrBadRequest):
		return models.ErrorResponse{Error: err.Error()}
	case errors.Is(err, pdfx.ErrDownload):
		return models.ErrorResponse{Error: "Failed to process PDF", Details: err.Error()}
	default:
		return models.ErrorResponse{Error: http.StatusText(StatusFor(err)), Details: err.Error()}
	}
}

func identity(username string) string {
	if u := strings.TrimSpace(username); u != "" {
		return u
	}
	return AnonymousUser
}

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return ErrBadRequest }
