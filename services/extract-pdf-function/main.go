// Package main is the serverless PDF page extraction relay.
package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/httpx"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/ashendes/order-sidebar/internal/pdfx"
	"github.com/ashendes/order-sidebar/internal/relay"

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
	const service = "extract-pdf-function"
	pdfService := pdfx.NewService(
		pdfx.NewDownloader(cfg.PDF.DownloadTimeout, cfg.PDF.MaxBytes, service),
		pdfx.NewExtractor(),
		patterns.NewBulkhead(cfg.PDF.MaxConcurrent, "pdf", service),
	)
	app := &App{relay: relay.New(nil, nil, nil, pdfService)}
	lambda.Start(app.handler)
}

// handler accepts POST {pdfUrl, pages, filename} and returns the pages as base64.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch req.RequestContext.HTTP.Method {
	case http.MethodOptions:
		return httpx.Empty(http.StatusOK, relay.CORSHeaders), nil
	case http.MethodPost:
	default:
		return httpx.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"}, relay.CORSHeaders)
	}

	var body models.ExtractPagesRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return httpx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()}, relay.CORSHeaders)
	}

	resp, err := a.relay.ExtractPages(ctx, body)
	if err != nil {
		log.WithField("pdf_url", body.PDFURL).Warn("PDF extraction failed: ", err)
		return httpx.JSON(relay.StatusFor(err), relay.ErrorBody(err), relay.CORSHeaders)
	}
	return httpx.JSON(http.StatusOK, resp, relay.CORSHeaders)
}
