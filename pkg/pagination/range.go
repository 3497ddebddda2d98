// Package pagination implements item ranges carried in the HTTP Range and
// Content-Range headers with a custom unit, e.g. "Range: cities=0-9".
package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnit      = errors.New("range unit not accepted")
	ErrMalformed = errors.New("malformed range")
	ErrMultiple  = errors.New("multiple ranges are not supported")
)

// Range is an inclusive window of item indexes.
type Range struct {
	Unit  string
	First int64
	Last  int64
}

// Parse reads a Range header value. An empty header yields the default
// window of limit items starting at zero. An open-ended range or a range
// wider than limit is cut down to limit items.
func Parse(header, unit string, limit int64) (Range, error) {
	if limit < 1 {
		return Range{}, fmt.Errorf("%w: limit must be positive", ErrMalformed)
	}

	header = strings.TrimSpace(header)
	if header == "" {
		return Range{Unit: unit, First: 0, Last: limit - 1}, nil
	}

	gotUnit, set, ok := strings.Cut(header, "=")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
	}
	if strings.TrimSpace(gotUnit) != unit {
		return Range{}, fmt.Errorf("%w: %q", ErrUnit, gotUnit)
	}
	if strings.Contains(set, ",") {
		return Range{}, ErrMultiple
	}

	firstStr, lastStr, ok := strings.Cut(strings.TrimSpace(set), "-")
	if !ok || firstStr == "" {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
	}

	first, err := strconv.ParseInt(firstStr, 10, 64)
	if err != nil || first < 0 {
		return Range{}, fmt.Errorf("%w: first index %q", ErrMalformed, firstStr)
	}

	maxLast := first + limit - 1
	if lastStr == "" {
		return Range{Unit: unit, First: first, Last: maxLast}, nil
	}

	last, err := strconv.ParseInt(lastStr, 10, 64)
	if err != nil || last < first {
		return Range{}, fmt.Errorf("%w: last index %q", ErrMalformed, lastStr)
	}

	return Range{Unit: unit, First: first, Last: min(last, maxLast)}, nil
}

func (r Range) Offset() int64 {
	return r.First
}

func (r Range) Limit() int64 {
	return r.Last - r.First + 1
}

// ContentRange formats the Content-Range value for served items out of
// total. When nothing was served the range part is "*".
func (r Range) ContentRange(served int, total int64) string {
	if served <= 0 {
		return fmt.Sprintf("%s */%d", r.Unit, total)
	}
	return fmt.Sprintf("%s %d-%d/%d", r.Unit, r.First, r.First+int64(served)-1, total)
}

// Partial reports whether served items starting at this range's first index
// cover less than total.
func (r Range) Partial(served int, total int64) bool {
	return r.First > 0 || int64(served) < total
}
