package record

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampFormats are the accepted layouts for text-to-timestamp parsing,
// tried in order.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// converter attempts to produce a value of one target kind from a source
// value. The second return is false on conversion failure.
type converter func(Value) (Value, bool)

// conversions is the explicit dispatch table keyed by target kind. Any
// source/target pairing without an entry here is a defined failure, never
// undefined behavior.
var conversions = map[Kind]converter{
	KindText:      toText,
	KindInt:       toInt,
	KindFloat:     toFloat,
	KindBool:      toBool,
	KindTimestamp: toTimestamp,
}

// Convert converts v to the target kind. Failure is non-fatal by contract:
// callers leave the destination field at its default.
func Convert(v Value, target Kind) (Value, bool) {
	conv, ok := conversions[target]
	if !ok {
		return Value{}, false
	}
	return conv(v)
}

func toText(v Value) (Value, bool) {
	if v.Kind == KindText && v.TextVal != nil {
		return v, true
	}
	return Value{}, false
}

func toInt(v Value) (Value, bool) {
	switch v.Kind {
	case KindInt:
		if v.IntVal != nil {
			return v, true
		}
	case KindFloat:
		if v.FloatVal != nil {
			f := *v.FloatVal
			// Only integral floats convert; truncating real decimals would
			// silently corrupt data.
			if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
				return NewInt(int64(f)), true
			}
		}
	case KindText:
		if v.TextVal != nil {
			if n, err := strconv.ParseInt(strings.TrimSpace(*v.TextVal), 10, 64); err == nil {
				return NewInt(n), true
			}
		}
	}
	return Value{}, false
}

func toFloat(v Value) (Value, bool) {
	switch v.Kind {
	case KindFloat:
		if v.FloatVal != nil {
			return v, true
		}
	case KindInt:
		if v.IntVal != nil {
			return NewFloat(float64(*v.IntVal)), true
		}
	case KindText:
		if v.TextVal != nil {
			f, err := strconv.ParseFloat(strings.TrimSpace(*v.TextVal), 64)
			if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return NewFloat(f), true
			}
		}
	}
	return Value{}, false
}

func toBool(v Value) (Value, bool) {
	switch v.Kind {
	case KindBool:
		if v.BoolVal != nil {
			return v, true
		}
	case KindText:
		if v.TextVal != nil {
			switch strings.ToLower(strings.TrimSpace(*v.TextVal)) {
			case "true", "1", "yes", "y", "on":
				return NewBool(true), true
			case "false", "0", "no", "n", "off":
				return NewBool(false), true
			}
		}
	}
	return Value{}, false
}

func toTimestamp(v Value) (Value, bool) {
	switch v.Kind {
	case KindTimestamp:
		if v.TimeVal != nil {
			return v, true
		}
	case KindText:
		if v.TextVal != nil {
			raw := strings.TrimSpace(*v.TextVal)
			for _, format := range timestampFormats {
				if t, err := time.Parse(format, raw); err == nil {
					return NewTimestamp(t), true
				}
			}
		}
	}
	return Value{}, false
}

// ParseText classifies free-form text into the most specific kind it can
// hold, falling back to text. Used when a row source has no native cell
// typing (CSV).
func ParseText(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Missing()
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return NewInt(n)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return NewFloat(f)
	}
	switch strings.ToLower(trimmed) {
	case "true", "false":
		return NewBool(strings.ToLower(trimmed) == "true")
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return NewTimestamp(t)
		}
	}
	return NewText(raw)
}
