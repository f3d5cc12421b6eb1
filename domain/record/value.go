package record

import (
	"fmt"
	"strings"
	"time"
)

// Value represents a single spreadsheet cell as a tagged scalar variant.
// The tag is fixed at construction; conversions between kinds go through
// the explicit dispatch in Convert, never through runtime type checks.
type Value struct {
	Kind      Kind       `json:"kind"`
	TextVal   *string    `json:"text_val,omitempty"`
	IntVal    *int64     `json:"int_val,omitempty"`
	FloatVal  *float64   `json:"float_val,omitempty"`
	BoolVal   *bool      `json:"bool_val,omitempty"`
	TimeVal   *time.Time `json:"time_val,omitempty"`
	IsMissing bool       `json:"is_missing"`
}

// Kind defines the storage type for values
type Kind string

const (
	KindText      Kind = "text"
	KindInt       Kind = "int"
	KindFloat     Kind = "float"
	KindBool      Kind = "bool"
	KindTimestamp Kind = "timestamp"
	KindMissing   Kind = "missing"
)

// NewText creates a text value
func NewText(s string) Value {
	return Value{Kind: KindText, TextVal: &s}
}

// NewInt creates an integer value
func NewInt(n int64) Value {
	return Value{Kind: KindInt, IntVal: &n}
}

// NewFloat creates a floating-point value
func NewFloat(f float64) Value {
	return Value{Kind: KindFloat, FloatVal: &f}
}

// NewBool creates a boolean value
func NewBool(b bool) Value {
	return Value{Kind: KindBool, BoolVal: &b}
}

// NewTimestamp creates a timestamp value
func NewTimestamp(t time.Time) Value {
	return Value{Kind: KindTimestamp, TimeVal: &t}
}

// Missing creates a missing value
func Missing() Value {
	return Value{Kind: KindMissing, IsMissing: true}
}

// IsBlank reports whether the value is absent or whitespace-only text.
// Numbers, booleans and timestamps are never blank once present.
func (v Value) IsBlank() bool {
	if v.IsMissing || v.Kind == KindMissing {
		return true
	}
	if v.Kind == KindText {
		return v.TextVal == nil || strings.TrimSpace(*v.TextVal) == ""
	}
	return false
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindInt:
		if v.IntVal != nil {
			return fmt.Sprintf("%d", *v.IntVal)
		}
	case KindFloat:
		if v.FloatVal != nil {
			return fmt.Sprintf("%g", *v.FloatVal)
		}
	case KindBool:
		if v.BoolVal != nil {
			return fmt.Sprintf("%t", *v.BoolVal)
		}
	case KindTimestamp:
		if v.TimeVal != nil {
			return v.TimeVal.Format(time.RFC3339)
		}
	case KindMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// AsText returns the text value, or empty string for other kinds
func (v Value) AsText() string {
	if v.TextVal != nil {
		return *v.TextVal
	}
	return ""
}

// AsInt returns the integer value, or 0 for other kinds
func (v Value) AsInt() int64 {
	if v.IntVal != nil {
		return *v.IntVal
	}
	return 0
}

// AsFloat returns the float value, or 0 for other kinds
func (v Value) AsFloat() float64 {
	if v.FloatVal != nil {
		return *v.FloatVal
	}
	return 0.0
}

// AsBool returns the boolean value, or false for other kinds
func (v Value) AsBool() bool {
	if v.BoolVal != nil {
		return *v.BoolVal
	}
	return false
}

// AsTimestamp returns the timestamp value, or the zero time for other kinds
func (v Value) AsTimestamp() time.Time {
	if v.TimeVal != nil {
		return *v.TimeVal
	}
	return time.Time{}
}
