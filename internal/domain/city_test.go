package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCityFromDocument(t *testing.T) {
	doc := map[string]any{
		"_id":   "01001",
		"city":  "AGAWAM",
		"state": "MA",
		"pop":   int32(15338),
		"loc":   []any{-72.622739, 42.070206},
	}

	city := CityFromDocument(doc)

	assert.Equal(t, "01001", city.ID)
	assert.Equal(t, "AGAWAM", city.Name)
	assert.Equal(t, "MA", city.State)
	assert.Equal(t, int32(15338), city.Attributes["pop"])
	assert.NotContains(t, city.Attributes, "_id")
	assert.Equal(t, doc, city.Document())
}

func TestCityFromDocument_ObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	city := CityFromDocument(map[string]any{"_id": oid, "city": "X", "state": "Y"})

	assert.Equal(t, oid.Hex(), city.ID)
}

func TestCity_MarshalJSON(t *testing.T) {
	city := City{ID: "1", Name: "BOSTON", State: "MA", Attributes: map[string]any{"pop": 10}}

	raw, err := json.Marshal(city)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"1","city":"BOSTON","state":"MA","pop":10}`, string(raw))
}

func TestCity_DocumentOmitsEmptyID(t *testing.T) {
	doc := City{Name: "BOSTON", State: "MA"}.Document()

	assert.NotContains(t, doc, "_id")
}
