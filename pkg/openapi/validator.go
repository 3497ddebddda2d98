// Package openapi rejects HTTP requests that do not match an OpenAPI 3
// contract.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// ContractError describes why a request does not match the contract.
type ContractError struct {
	Status  int
	Message string
	Details []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

type Validator struct {
	router routers.Router
}

// New loads and validates the contract document in raw.
func New(ctx context.Context, raw []byte) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return &Validator{router: router}, nil
}

// ValidateRequest checks the method, path and parameters of r. Request
// bodies are left to the caller. The returned error is a *ContractError.
func (v *Validator) ValidateRequest(r *http.Request) error {
	route, pathParams, err := v.router.FindRoute(r)
	if err != nil {
		switch {
		case errors.Is(err, routers.ErrMethodNotAllowed):
			return &ContractError{
				Status:  http.StatusMethodNotAllowed,
				Message: fmt.Sprintf("method %s not allowed for %s", r.Method, r.URL.Path),
			}
		default:
			return &ContractError{
				Status:  http.StatusNotFound,
				Message: fmt.Sprintf("path %s not found", r.URL.Path),
			}
		}
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			ExcludeRequestBody: true,
			MultiError:         true,
		},
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		return &ContractError{
			Status:  http.StatusBadRequest,
			Message: "request does not match the api contract",
			Details: details(err),
		}
	}

	return nil
}

func details(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]string, 0, len(multi))
		for _, e := range multi {
			out = append(out, detail(e))
		}
		return out
	}
	return []string{detail(err)}
}

func detail(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		reason := reqErr.Reason
		if reason == "" && reqErr.Err != nil {
			reason = reqErr.Err.Error()
		}
		return fmt.Sprintf("%s parameter %q: %s", reqErr.Parameter.In, reqErr.Parameter.Name, reason)
	}
	return err.Error()
}
