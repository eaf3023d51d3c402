package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator checks every request the OpenAPI document describes
// against it before the generated wrapper binds parameters. Requests for
// paths outside the document pass through.
func requestValidator(spec *openapi3.T) (echo.MiddlewareFunc, error) {
	// paths are matched as-is, whatever host serves them
	spec.Servers = nil

	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}
	options.WithCustomSchemaErrorFunc(schemaErrorMessage)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return next(c)
		}
	}, nil
}

// schemaErrorMessage drops the schema and value dumps kin-openapi appends
// by default.
func schemaErrorMessage(err *openapi3.SchemaError) string {
	if err.Reason == "" {
		return ""
	}
	pointer := err.JSONPointer()
	if len(pointer) == 0 {
		return err.Reason
	}
	return fmt.Sprintf("/%s: %s", strings.Join(pointer, "/"), err.Reason)
}
