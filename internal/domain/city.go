package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID    = "_id"
	FieldName  = "city"
	FieldState = "state"
)

// City is a stored city document. Attributes holds every field besides the
// identifier, name and state, exactly as it was submitted.
type City struct {
	ID         string
	Name       string
	State      string
	Attributes map[string]any
}

// CityFromDocument splits a raw document into a City. ObjectID identifiers
// are rendered as hex.
func CityFromDocument(doc map[string]any) City {
	city := City{Attributes: make(map[string]any, len(doc))}

	for k, v := range doc {
		switch k {
		case FieldID:
			city.ID = IDString(v)
		case FieldName:
			city.Name, _ = v.(string)
		case FieldState:
			city.State, _ = v.(string)
		default:
			city.Attributes[k] = v
		}
	}

	return city
}

// Document merges the city back into a single map suitable for storage or
// rendering. An empty ID is omitted.
func (c City) Document() map[string]any {
	doc := make(map[string]any, len(c.Attributes)+3)
	for k, v := range c.Attributes {
		doc[k] = v
	}
	if c.ID != "" {
		doc[FieldID] = c.ID
	}
	doc[FieldName] = c.Name
	doc[FieldState] = c.State

	return doc
}

func (c City) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// IDString renders a stored identifier as a string.
func IDString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
