// Package vendorapi talks to the order-management API the sidebar looks orders up in.
package vendorapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// SearchPrefix is prepended to search terms that do not already carry it
const SearchPrefix = "Order-"

const findPath = "/api/json/manage_orders/find"

// ErrUpstream marks a failed or malformed vendor API response
var ErrUpstream = errors.New("vendor api error")

// NormalizeSearchTerm prefixes term with SearchPrefix unless it already starts
// with it, ignoring case.
func NormalizeSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	if strings.HasPrefix(strings.ToLower(term), strings.ToLower(SearchPrefix)) {
		return term
	}
	return SearchPrefix + term
}

// Result is the vendor response kept raw for relaying. Orders holds the
// undecoded order objects when the body has the usual envelope.
type Result struct {
	Raw    []byte
	Orders []json.RawMessage
}

// Decode parses the relayed orders into the typed model
func (r *Result) Decode() (models.SearchResponse, error) {
	var out models.SearchResponse
	err := json.Unmarshal(r.Raw, &out)
	return out, err
}

// Client queries the vendor find endpoint through a circuit breaker
type Client struct {
	http     *resty.Client
	circuit  *patterns.CircuitBreakerWrapper
	baseURL  string
	username string
	password string
}

// NewClient creates a vendor API client for the named calling service
func NewClient(cfg config.VendorConfig, service string) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = patterns.DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0), // failures are handled by the circuit breaker
		circuit:  patterns.NewCircuitBreaker("VendorAPI", service),
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Circuit exposes the breaker for status reporting
func (c *Client) Circuit() *patterns.CircuitBreakerWrapper {
	return c.circuit
}

// FindOrders searches orders by an already-normalized term
func (c *Client) FindOrders(ctx context.Context, term string) (*Result, error) {
	out, err := c.circuit.Execute(func() (interface{}, error) {
		resp, httpErr := c.http.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetQueryParams(c.findParams(term)).
			Get(c.baseURL + findPath)

		if httpErr != nil {
			return nil, fmt.Errorf("%w: HTTP error: %v", ErrUpstream, httpErr)
		}

		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("%w: vendor api returned status %d", ErrUpstream, resp.StatusCode())
		}

		res := &Result{Raw: resp.Body()}
		if !json.Valid(res.Raw) {
			return nil, fmt.Errorf("%w: response is not valid JSON", ErrUpstream)
		}

		var envelope struct {
			Orders []json.RawMessage `json:"orders"`
		}
		if err := json.Unmarshal(res.Raw, &envelope); err != nil {
			log.WithField("term", term).Warn("Unexpected vendor response shape, relaying as is: ", err)
		} else {
			res.Orders = envelope.Orders
		}
		return res, nil
	})
	if err != nil {
		log.WithFields(log.Fields{
			"term":    term,
			"circuit": c.circuit.GetState(),
		}).Warn("Vendor order search failed: ", err)
		return nil, patterns.FormatError("VendorAPI", err)
	}
	return out.(*Result), nil
}

func (c *Client) findParams(term string) map[string]string {
	return map[string]string{
		"conditions[1][field]":         "3",
		"conditions[1][condition]":     "1",
		"conditions[1][string]":        term,
		"limit":                        "100",
		"offset":                       "0",
		"sortby":                       "1",
		"include_workflow_data":        "1",
		"include_po_data":              "1",
		"include_shipments":            "1",
		"include_production_file_info": "1",
		"username":                     c.username,
		"password":                     c.password,
	}
}
