package http

import (
	"context"
	"net/http"

	"orderflow/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// LoadOpenAPISpec parses and validates the embedded OpenAPI document.
// Called once at startup so a malformed contract fails the boot instead of
// surfacing on the first /openapi.json request.
func LoadOpenAPISpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPIRoute serves the validated contract at /openapi.json.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
}
