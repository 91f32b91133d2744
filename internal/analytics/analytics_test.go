package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPayload(t *testing.T) {
	p := SearchPayload("Order-1", "")
	assert.Equal(t, "anonymous_user", p.ClientID)
	require.Len(t, p.Events, 1)
	assert.Equal(t, "search", p.Events[0].Name)
	assert.Equal(t, "Order-1", p.Events[0].Params["search_term"])

	assert.Equal(t, "dana", SearchPayload("x", "dana").ClientID)
}

func TestTrackSearchSends(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "G-1", r.URL.Query().Get("measurement_id"))
		assert.Equal(t, "sec", r.URL.Query().Get("api_secret"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(config.AnalyticsConfig{MeasurementID: "G-1", APISecret: "sec", Endpoint: srv.URL})
	c.TrackSearch(context.Background(), "Order-9", "sam")
	assert.Equal(t, "sam", got.ClientID)
	assert.Equal(t, "Order-9", got.Events[0].Params["search_term"])
}

func TestTrackSearchDisabled(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := NewClient(config.AnalyticsConfig{Endpoint: srv.URL})
	c.TrackSearch(context.Background(), "Order-9", "sam")
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestTrackSearchSwallowsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.AnalyticsConfig{MeasurementID: "G-1", APISecret: "sec", Endpoint: srv.URL})
	assert.NotPanics(t, func() { c.TrackSearch(context.Background(), "Order-9", "sam") })
}
