package vendorapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSearchTerm(t *testing.T) {
	assert.Equal(t, "Order-1234", NormalizeSearchTerm("1234"))
	assert.Equal(t, "Order-1234", NormalizeSearchTerm("Order-1234"))
	assert.Equal(t, "order-1234", NormalizeSearchTerm("order-1234"))
	assert.Equal(t, "Order-1234", NormalizeSearchTerm("  1234 "))
}

func TestFindOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, findPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Order-77", q.Get("conditions[1][string]"))
		assert.Equal(t, "3", q.Get("conditions[1][field]"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "1", q.Get("include_shipments"))
		assert.Equal(t, "relay", q.Get("username"))
		assert.Equal(t, "pw", q.Get("password"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orders":[{"order_id":77,"order_status":1,"notes":[],"order_lines":[]}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL + "/", Username: "relay", Password: "pw"}, "test-find")
	res, err := c.FindOrders(context.Background(), "Order-77")
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Contains(t, string(res.Raw), `"order_id":77`)

	decoded, err := res.Decode()
	require.NoError(t, err)
	assert.Equal(t, models.ID("77"), decoded.Orders[0].OrderID)
}

func TestFindOrdersRelaysUnexpectedFieldTypes(t *testing.T) {
	body := `{"orders":[{"order_id":"1","order_status":"3","order_lines":[{"id":"9","item_type":"25"}]}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL}, "test-loose-types")
	for i := 0; i < 4; i++ {
		res, err := c.FindOrders(context.Background(), "Order-1")
		require.NoError(t, err)
		assert.Equal(t, body, string(res.Raw))
		assert.Len(t, res.Orders, 1)
	}
	assert.Equal(t, 0, c.Circuit().GetStateValue())
}

func TestFindOrdersRelaysOddEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders":"none","message":"no match"}`))
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL}, "test-odd-envelope")
	res, err := c.FindOrders(context.Background(), "Order-1")
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.JSONEq(t, `{"orders":"none","message":"no match"}`, string(res.Raw))
}

func TestFindOrdersUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL}, "test-fail")
	_, err := c.FindOrders(context.Background(), "Order-1")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestFindOrdersMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL}, "test-malformed")
	_, err := c.FindOrders(context.Background(), "Order-1")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestFindOrdersOpensCircuit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(config.VendorConfig{BaseURL: srv.URL}, "test-circuit")
	for i := 0; i < 3; i++ {
		_, _ = c.FindOrders(context.Background(), "Order-1")
	}
	_, err := c.FindOrders(context.Background(), "Order-1")
	assert.True(t, errors.Is(err, patterns.ErrCircuitOpen))
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, c.Circuit().GetStateValue())
}
