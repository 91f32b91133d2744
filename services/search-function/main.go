// Package main is the serverless order search relay.
package main

import (
	"context"
	"net/http"

	"github.com/ashendes/order-sidebar/internal/analytics"
	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/httpx"
	"github.com/ashendes/order-sidebar/internal/relay"
	"github.com/ashendes/order-sidebar/internal/vendorapi"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
)

// App holds the relay the handler delegates to.
type App struct {
	relay *relay.Relay
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.MustLoad("")
	app := &App{
		relay: relay.New(
			vendorapi.NewClient(cfg.Vendor, "search-function"),
			analytics.NewClient(cfg.Analytics),
			nil, // the sidebar keeps its own history in client storage
			nil,
		),
	}
	lambda.Start(app.handler)
}

// handler relays GET ?searchTerm=&username= to the vendor API.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if req.RequestContext.HTTP.Method == http.MethodOptions {
		return httpx.Empty(http.StatusOK, relay.CORSHeaders), nil
	}

	q := req.QueryStringParameters
	body, err := a.relay.Search(ctx, q["searchTerm"], q["username"])
	if err != nil {
		return httpx.JSON(relay.StatusFor(err), relay.ErrorBody(err), relay.CORSHeaders)
	}
	return httpx.Raw(http.StatusOK, body, relay.CORSHeaders)
}
