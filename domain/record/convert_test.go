package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertTextIdentity(t *testing.T) {
	v, ok := Convert(NewText("hello"), KindText)
	assert.True(t, ok)
	assert.Equal(t, "hello", v.AsText())

	// only text converts to text
	_, ok = Convert(NewInt(5), KindText)
	assert.False(t, ok)
	_, ok = Convert(NewBool(true), KindText)
	assert.False(t, ok)
}

func TestConvertToInt(t *testing.T) {
	v, ok := Convert(NewInt(7), KindInt)
	assert.True(t, ok)
	assert.Equal(t, int64(7), v.AsInt())

	v, ok = Convert(NewFloat(30), KindInt)
	assert.True(t, ok)
	assert.Equal(t, int64(30), v.AsInt())

	_, ok = Convert(NewFloat(30.5), KindInt)
	assert.False(t, ok, "non-integral float must not truncate")

	v, ok = Convert(NewText(" 42 "), KindInt)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v.AsInt())

	_, ok = Convert(NewText("invalid_number"), KindInt)
	assert.False(t, ok)
	_, ok = Convert(NewBool(true), KindInt)
	assert.False(t, ok)
}

func TestConvertToFloat(t *testing.T) {
	v, ok := Convert(NewFloat(2.5), KindFloat)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v.AsFloat())

	v, ok = Convert(NewInt(3), KindFloat)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v.AsFloat())

	v, ok = Convert(NewText("2.75"), KindFloat)
	assert.True(t, ok)
	assert.Equal(t, 2.75, v.AsFloat())

	_, ok = Convert(NewText("NaN"), KindFloat)
	assert.False(t, ok)
	_, ok = Convert(NewText("not a number"), KindFloat)
	assert.False(t, ok)
}

func TestConvertToBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "yes", "Y", "on"} {
		v, ok := Convert(NewText(raw), KindBool)
		assert.True(t, ok, raw)
		assert.True(t, v.AsBool(), raw)
	}
	for _, raw := range []string{"false", "0", "no", "n", "OFF"} {
		v, ok := Convert(NewText(raw), KindBool)
		assert.True(t, ok, raw)
		assert.False(t, v.AsBool(), raw)
	}

	_, ok := Convert(NewText("maybe"), KindBool)
	assert.False(t, ok)
	_, ok = Convert(NewInt(1), KindBool)
	assert.False(t, ok)
}

func TestConvertToTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	v, ok := Convert(NewTimestamp(ts), KindTimestamp)
	assert.True(t, ok)
	assert.Equal(t, ts, v.AsTimestamp())

	v, ok = Convert(NewText("2024-03-01"), KindTimestamp)
	assert.True(t, ok)
	assert.Equal(t, ts, v.AsTimestamp())

	v, ok = Convert(NewText("2024-03-01T15:04:05Z"), KindTimestamp)
	assert.True(t, ok)
	assert.Equal(t, 15, v.AsTimestamp().Hour())

	_, ok = Convert(NewText("not a date"), KindTimestamp)
	assert.False(t, ok)
	_, ok = Convert(NewFloat(1.5), KindTimestamp)
	assert.False(t, ok)
}

func TestConvertUnknownTargetFails(t *testing.T) {
	_, ok := Convert(NewText("x"), KindMissing)
	assert.False(t, ok)
	_, ok = Convert(NewText("x"), Kind("tensor"))
	assert.False(t, ok)
}

func TestParseTextClassification(t *testing.T) {
	assert.Equal(t, KindMissing, ParseText("   ").Kind)
	assert.Equal(t, KindInt, ParseText("42").Kind)
	assert.Equal(t, KindFloat, ParseText("2.5").Kind)
	assert.Equal(t, KindBool, ParseText("true").Kind)
	assert.Equal(t, KindTimestamp, ParseText("2024-03-01").Kind)
	assert.Equal(t, KindText, ParseText("john@example.com").Kind)
}
