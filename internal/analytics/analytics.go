// Package analytics reports search events to a GA4 measurement-protocol endpoint.
package analytics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/metrics"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const anonymousClient = "anonymous_user"

// Event is one measurement-protocol event
type Event struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

// Payload is the measurement-protocol request body
type Payload struct {
	ClientID string  `json:"client_id"`
	Events   []Event `json:"events"`
}

// Client sends events; a zero-configured client drops them silently
type Client struct {
	http     *resty.Client
	cfg      config.AnalyticsConfig
	endpoint string
}

// NewClient creates an analytics client
func NewClient(cfg config.AnalyticsConfig) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(patterns.AnalyticsTimeout).
			SetRetryCount(0),
		cfg:      cfg,
		endpoint: cfg.Endpoint,
	}
}

// SearchPayload builds the event body for a search by username
func SearchPayload(term, username string) Payload {
	if username == "" {
		username = anonymousClient
	}
	return Payload{
		ClientID: username,
		Events: []Event{{
			Name:   "search",
			Params: map[string]string{"search_term": term},
		}},
	}
}

// TrackSearch records a search event. It never fails the caller: errors are
// logged and counted.
func (c *Client) TrackSearch(ctx context.Context, term, username string) {
	if !c.cfg.Enabled() {
		metrics.AnalyticsEventsTotal.WithLabelValues("search", "disabled").Inc()
		return
	}
	if err := c.send(ctx, SearchPayload(term, username)); err != nil {
		metrics.AnalyticsEventsTotal.WithLabelValues("search", "failed").Inc()
		log.WithField("term", term).Warn("Analytics event failed: ", err)
		return
	}
	metrics.AnalyticsEventsTotal.WithLabelValues("search", "sent").Inc()
}

func (c *Client) send(ctx context.Context, p Payload) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParams(map[string]string{
			"measurement_id": c.cfg.MeasurementID,
			"api_secret":     c.cfg.APISecret,
		}).
		SetBody(p).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("HTTP error: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("analytics endpoint returned status %d", resp.StatusCode())
	}
	return nil
}
