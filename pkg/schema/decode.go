package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrTrailingData = errors.New("unexpected data after json document")

// DecodeJSON reads exactly one JSON document from r. Integral numbers that
// fit become int64, every other number becomes float64.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return normalizeNumbers(doc)
}

func normalizeNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil || math.IsInf(f, 0) {
			return nil, fmt.Errorf("number %s out of range", t)
		}
		return f, nil
	case map[string]any:
		for k, item := range t {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []any:
		for i, item := range t {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
