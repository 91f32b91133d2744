// Package httpx provides helper functions for creating API Gateway responses.
package httpx

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// JSON creates a JSON HTTP response with the given status code and value.
func JSON(status int, v any, headers map[string]string) (events.APIGatewayV2HTTPResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return Raw(status, b, headers)
}

// Raw creates a JSON HTTP response from an already encoded body.
func Raw(status int, body []byte, headers map[string]string) (events.APIGatewayV2HTTPResponse, error) {
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    h,
		Body:       string(body),
	}, nil
}

// Empty creates a bodiless response, used for CORS preflight.
func Empty(status int, headers map[string]string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{StatusCode: status, Headers: headers}
}

// Header retrieves a header value in a case-insensitive manner.
func Header(h map[string]string, key string) string {
	lk := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lk {
			return v
		}
	}
	return ""
}
