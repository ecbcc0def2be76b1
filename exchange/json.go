// Package exchange converts values to and from JSON text.
package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ToJSON returns compact JSON representation of v. Struct fields keep
// declaration order and slices keep element order, map keys are sorted.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal %T: %w", v, err)
	}
	return string(data), nil
}

// FromJSON decodes text into a new value of type T, so the result carries
// T's methods. Fields unknown to T and trailing data are rejected.
func FromJSON[T any](text string) (*T, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	v := new(T)
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("unable to unmarshal %T: %w", v, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to unmarshal %T: unexpected data after JSON value", v)
	}
	return v, nil
}
