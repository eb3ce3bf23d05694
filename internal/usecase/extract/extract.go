// Package extract pulls named values out of JSON API responses with JSONPath.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Field names a JSONPath expression.
type Field struct {
	Name string
	Expr string
}

// Result is the outcome of extracting one field.
type Result struct {
	Name    string
	Value   string
	Success bool
	Message string
}

// ParseField parses "name=$.expr". A bare expression is its own name.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Field{}, fmt.Errorf("empty field")
	}
	name, expr, ok := strings.Cut(s, "=")
	if !ok {
		return Field{Name: s, Expr: s}, nil
	}
	name, expr = strings.TrimSpace(name), strings.TrimSpace(expr)
	if name == "" || expr == "" {
		return Field{}, fmt.Errorf("field %q: expected name=expression", s)
	}
	return Field{Name: name, Expr: expr}, nil
}

// Apply evaluates fields against a JSON body, in the given order.
//
// If body is not JSON every field fails. A failing field is reported in its
// Result; other fields still run.
func Apply(body []byte, fields []Field) []Result {
	results := make([]Result, 0, len(fields))
	if len(fields) == 0 {
		return results
	}

	doc, err := parseJSON(body)
	if err != nil {
		for _, f := range fields {
			results = append(results, Result{
				Name:    f.Name,
				Message: fmt.Sprintf("field %q (%s): response body is not valid JSON", f.Name, strings.TrimSpace(f.Expr)),
			})
		}
		return results
	}

	for _, f := range fields {
		results = append(results, applyOne(doc, f))
	}
	return results
}

func applyOne(doc any, f Field) Result {
	expr := strings.TrimSpace(f.Expr)
	if expr == "" {
		return Result{Name: f.Name, Message: fmt.Sprintf("field %q: empty jsonpath expression", f.Name)}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return Result{Name: f.Name, Message: fmt.Sprintf("field %q (%s): jsonpath error: %v", f.Name, expr, err)}
	}
	if isEmptyValue(val) {
		return Result{Name: f.Name, Message: fmt.Sprintf("field %q (%s): no value found", f.Name, expr)}
	}

	s, err := toString(val)
	if err != nil {
		return Result{Name: f.Name, Message: fmt.Sprintf("field %q (%s): cannot convert value to string: %v", f.Name, expr, err)}
	}
	return Result{Name: f.Name, Value: s, Success: true}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard and index access
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconvFloat(t), nil
	case bool:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}

// strconvFloat prints whole numbers without an exponent.
func strconvFloat(f float64) string {
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Sprint(f)
	}
	return string(b)
}
