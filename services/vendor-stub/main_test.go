package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/vendorapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Stub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stub, err := NewStub(fixture)
	require.NoError(t, err)
	srv := httptest.NewServer(stub.Router())
	t.Cleanup(srv.Close)
	return stub, srv
}

func TestStubServesVendorClient(t *testing.T) {
	_, srv := newServer(t)
	client := vendorapi.NewClient(config.VendorConfig{BaseURL: srv.URL}, "stub-test")

	res, err := client.FindOrders(context.Background(), vendorapi.NormalizeSearchTerm("48214"))
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	decoded, err := res.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Booth Giveaways", decoded.Orders[0].JobName)

	res, err = client.FindOrders(context.Background(), "Order-1")
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
}

func TestStubChaosFailsEveryRequestAtFullRate(t *testing.T) {
	stub, srv := newServer(t)
	stub.failureRate = 1

	resp, err := http.Post(srv.URL+"/chaos/vendor/enable", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, stub.getChaosEnabled())

	client := vendorapi.NewClient(config.VendorConfig{BaseURL: srv.URL}, "stub-chaos-test")
	_, err = client.FindOrders(context.Background(), "Order-48213")
	assert.ErrorIs(t, err, vendorapi.ErrUpstream)

	resp, err = http.Post(srv.URL+"/chaos/vendor/disable", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.False(t, stub.getChaosEnabled())
}

func TestSimulateChaos(t *testing.T) {
	stub, err := NewStub(fixture)
	require.NoError(t, err)
	assert.NoError(t, stub.simulateChaos(context.Background()))

	stub.failureRate = 1
	stub.setChaosEnabled(true)
	assert.ErrorIs(t, stub.simulateChaos(context.Background()), errSimulatedFailure)

	stub.setChaosEnabled(false)
	stub.setSlowMode(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, stub.simulateChaos(ctx), context.Canceled)
}
