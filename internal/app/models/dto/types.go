package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FlexInt64 decodes from a JSON number or a numeric string. Browser form
// fields post ids such as dep_id as strings.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt64) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumber(data)
	if err != nil || raw == "" {
		return err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return typeError(data, reflect.TypeOf(*n))
	}
	*n = FlexInt64(v)
	return nil
}

// FlexFloat64 decodes from a JSON number or a numeric string. Unlike
// FlexInt64 an empty string is an error, and so are Inf and NaN.
type FlexFloat64 float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	raw, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return typeError(data, reflect.TypeOf(*f))
	}
	*f = FlexFloat64(v)
	return nil
}

// unquoteNumber returns the textual number held by data. null and "" yield
// an empty string so the field stays at its zero value.
func unquoteNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}

// typeError lets the decoder attach the offending field name
func typeError(data []byte, typ reflect.Type) error {
	return &json.UnmarshalTypeError{Value: "number " + string(bytes.TrimSpace(data)), Type: typ}
}
