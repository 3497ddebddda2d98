package contract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDocumentsCompile(t *testing.T) {
	contractValidator, err := NewContractValidator(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, contractValidator)

	citySchema, err := NewCitySchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, citySchema.Validate(map[string]any{
		"_id":   "01001",
		"city":  "AGAWAM",
		"state": "MA",
		"loc":   []any{-72.622739, 42.070206},
		"pop":   15338.0,
	}))
}

func TestContractRangeUnit(t *testing.T) {
	contractValidator, err := NewContractValidator(context.Background())
	require.NoError(t, err)

	tests := []struct {
		header string
		ok     bool
	}{
		{header: CityRangeUnit + "=0-9", ok: true},
		{header: CityRangeUnit + "=10-", ok: true},
		{header: "items=0-9", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/state/MA", nil)
			req.Header.Set("Range", tt.header)

			err := contractValidator.ValidateRequest(req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
