// Package schema validates JSON documents against a JSON Schema.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Violation is a single schema failure. Field is the property name for
// missing required properties and a JSON pointer otherwise.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Validator checks documents against one compiled schema.
type Validator struct {
	schema     *jsonschema.Schema
	properties map[string]property
	printer    *message.Printer
}

type property struct {
	Type  any       `json:"type"`
	Items *property `json:"items"`
}

// New compiles the schema document in raw. id is the absolute URL the schema
// is registered under for $ref resolution and error reporting.
func New(id string, raw []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(id, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	compiled, err := c.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var shape struct {
		Properties map[string]property `json:"properties"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("read schema properties: %w", err)
	}

	return &Validator{
		schema:     compiled,
		properties: shape.Properties,
		printer:    message.NewPrinter(language.English),
	}, nil
}

// Validate returns nil when doc conforms, a *ValidationError listing all
// violations when it does not.
func (v *Validator) Validate(doc any) error {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	out := &ValidationError{}
	v.collect(verr, out)
	sort.SliceStable(out.Violations, func(i, j int) bool {
		return out.Violations[i].Field < out.Violations[j].Field
	})

	return out
}

func (v *Validator) collect(verr *jsonschema.ValidationError, out *ValidationError) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			v.collect(cause, out)
		}
		return
	}

	if req, ok := verr.ErrorKind.(*kind.Required); ok {
		for _, name := range req.Missing {
			out.Violations = append(out.Violations, Violation{
				Field:   joinPointer(append(slices.Clone(verr.InstanceLocation), name)),
				Message: fmt.Sprintf("missing property %q", name),
			})
		}
		return
	}

	out.Violations = append(out.Violations, Violation{
		Field:   joinPointer(verr.InstanceLocation),
		Message: verr.ErrorKind.LocalizedString(v.printer),
	})
}

// joinPointer renders top-level locations as bare property names and deeper
// ones as JSON pointers.
func joinPointer(loc []string) string {
	switch len(loc) {
	case 0:
		return "/"
	case 1:
		return loc[0]
	default:
		return "/" + strings.Join(loc, "/")
	}
}

// CoerceForm turns form values into a document, converting each property to
// the JSON type the schema declares for it. Values that do not parse are kept
// as strings so that Validate reports them.
func (v *Validator) CoerceForm(form url.Values) map[string]any {
	doc := make(map[string]any, len(form))

	for key, values := range form {
		prop, known := v.properties[key]
		if !known {
			if len(values) == 1 {
				doc[key] = values[0]
			} else {
				doc[key] = toAny(values)
			}
			continue
		}

		if prop.hasType("array") {
			items := splitValues(values)
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = coerceScalar(item, prop.Items)
			}
			doc[key] = out
			continue
		}

		doc[key] = coerceScalar(values[0], &prop)
	}

	return doc
}

func (p *property) hasType(name string) bool {
	if p == nil {
		return false
	}
	switch t := p.Type.(type) {
	case string:
		return t == name
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == name {
				return true
			}
		}
	}
	return false
}

func coerceScalar(value string, p *property) any {
	switch {
	case p.hasType("integer"), p.hasType("number"):
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		// NaN and infinities are not JSON numbers and stay strings.
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	case p.hasType("boolean"):
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return value
}

// splitValues accepts both repeated keys and a single comma separated value.
func splitValues(values []string) []string {
	if len(values) != 1 {
		return values
	}
	parts := strings.Split(values[0], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, s := range values {
		out[i] = s
	}
	return out
}
