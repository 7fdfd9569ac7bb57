package shape

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrBadJSON indicates the input is not a JSON object document.
	ErrBadJSON = errors.New("shape: malformed JSON document")

	// ErrMissingField indicates a required field is absent from the document.
	ErrMissingField = errors.New("shape: required field missing")

	// ErrBadField indicates a required field is present but not a number.
	ErrBadField = errors.New("shape: field has wrong type")
)

// ToJSON encodes v as compact JSON text. It is a thin wrapper over
// encoding/json kept for symmetry with the typed decode helpers.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("ToJSON: %w", err)
	}

	return string(data), nil
}

// RectangleFromJSON decodes data into a generic key-value document and
// copies the recognized fields into an explicit Rectangle. Required fields
// are "width" and "height"; unknown keys are ignored.
//
// Errors:
//   - ErrBadJSON       — data is not a JSON object.
//   - ErrMissingField  — width or height is absent.
//   - ErrBadField      — width or height is not a number.
func RectangleFromJSON(data []byte) (Rectangle, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Rectangle{}, fmt.Errorf("RectangleFromJSON: %v: %w", err, ErrBadJSON)
	}

	width, err := numberField(doc, "width")
	if err != nil {
		return Rectangle{}, fmt.Errorf("RectangleFromJSON: %w", err)
	}
	height, err := numberField(doc, "height")
	if err != nil {
		return Rectangle{}, fmt.Errorf("RectangleFromJSON: %w", err)
	}

	return NewRectangle(width, height), nil
}

// numberField extracts a required numeric field from a decoded document.
func numberField(doc map[string]any, key string) (float64, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}

	// encoding/json decodes every JSON number into float64.
	num, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrBadField)
	}

	return num, nil
}
