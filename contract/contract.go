// Package contract embeds the API contract and the city document schema so the
// server validates against exactly the files it serves.
package contract

import (
	"context"
	"embed"
	"fmt"

	"github.com/vibe-gaming/cities/pkg/openapi"
	"github.com/vibe-gaming/cities/pkg/schema"
)

const (
	CitySchemaFile = "city-schema.json"
	CityAPIFile    = "city-api.yaml"

	// CityRangeUnit is the only unit the contract accepts in Range headers.
	CityRangeUnit = "cities"

	// CitySchemaURL identifies the city schema inside the validator.
	CitySchemaURL = "https://cities.local/schema/" + CitySchemaFile
)

//go:embed city-schema.json city-api.yaml
var FS embed.FS

// NewContractValidator builds the request validator for the embedded API
// contract.
func NewContractValidator(ctx context.Context) (*openapi.Validator, error) {
	raw, err := FS.ReadFile(CityAPIFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CityAPIFile, err)
	}
	return openapi.New(ctx, raw)
}

// NewCitySchemaValidator compiles the embedded city document schema.
func NewCitySchemaValidator() (*schema.Validator, error) {
	raw, err := FS.ReadFile(CitySchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CitySchemaFile, err)
	}
	return schema.New(CitySchemaURL, raw)
}
