package mapping

import (
	"testing"
	"time"

	"sheetmap/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name   string
	Email  string
	Age    int64
	Active bool
	Joined time.Time
}

func personSchema() Schema[person] {
	return Schema[person]{
		Text("Name", func(p *person, v string) { p.Name = v }, Required()),
		Text("Email", func(p *person, v string) { p.Email = v }),
		Int("Age", func(p *person, v int64) { p.Age = v }),
	}
}

func dyn(pairs ...interface{}) *record.Dynamic {
	rec := record.NewDynamic()
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			rec.Set(key, record.NewText(v))
		case int:
			rec.Set(key, record.NewInt(int64(v)))
		case int64:
			rec.Set(key, record.NewInt(v))
		case float64:
			rec.Set(key, record.NewFloat(v))
		case bool:
			rec.Set(key, record.NewBool(v))
		case time.Time:
			rec.Set(key, record.NewTimestamp(v))
		}
	}
	return rec
}

func TestMapFilterDropsRecordWithBlankFilteredField(t *testing.T) {
	// Scenario: John's Email is blank and Email filters empties, so the
	// whole John record is dropped; Jane survives.
	records := []*record.Dynamic{
		dyn("Name", "John", "Email", "", "Age", 30),
		dyn("Name", "Jane", "Email", "jane@x.com", "Age", 25),
	}

	out, report := Map(records, personSchema())

	require.Len(t, out, 1)
	assert.Equal(t, "Jane", out[0].Name)
	assert.Equal(t, int64(25), out[0].Age)
	assert.Equal(t, 2, report.SourceCount)
	assert.Equal(t, 1, report.DroppedCount())

	var sawFilterDrop bool
	for _, d := range report.Diagnostics {
		if d.Reason == ReasonFilterEmpty && d.RecordIndex == 0 && d.Column == "Email" {
			sawFilterDrop = true
			assert.True(t, d.Dropped)
		}
	}
	assert.True(t, sawFilterDrop)
}

func TestMapConversionFailureIsNonFatal(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Name", "John", "Age", "invalid_number"),
	}

	out, report := Map(records, personSchema())

	require.Len(t, out, 1)
	assert.Equal(t, "John", out[0].Name)
	assert.Equal(t, int64(0), out[0].Age, "failed conversion leaves the default")

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, ReasonConversionFailed, report.Diagnostics[0].Reason)
	assert.Equal(t, "Age", report.Diagnostics[0].Column)
	assert.False(t, report.Diagnostics[0].Dropped)
}

func TestMapEmptySchemaYieldsNothing(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Name", "John"),
		dyn("Name", "Jane"),
	}

	out, report := Map(records, Schema[person]{})

	assert.Empty(t, out)
	assert.Equal(t, 2, report.SourceCount)
	assert.Equal(t, 0, report.KeptCount)
}

func TestMapAbsentColumnsAreNotBlankValues(t *testing.T) {
	// Only Name is required; Email and Age are simply absent. Absence never
	// triggers the empty filter, so the record is kept.
	records := []*record.Dynamic{dyn("Name", "John")}

	out, report := Map(records, personSchema())

	require.Len(t, out, 1)
	assert.Equal(t, "John", out[0].Name)
	assert.Equal(t, "", out[0].Email)
	assert.Equal(t, int64(0), out[0].Age)
	assert.Equal(t, 0, report.DroppedCount())
}

func TestMapRequiredFieldMissingDropsRecord(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Email", "john@x.com", "Age", 30),
		dyn("Name", "Jane", "Email", "jane@x.com"),
	}

	out, report := Map(records, personSchema())

	require.Len(t, out, 1)
	assert.Equal(t, "Jane", out[0].Name)

	var sawRequiredDrop bool
	for _, d := range report.Diagnostics {
		if d.Reason == ReasonRequiredMissing && d.RecordIndex == 0 {
			sawRequiredDrop = true
			assert.Equal(t, "Name", d.Column)
		}
	}
	assert.True(t, sawRequiredDrop)
}

func TestMapCaseInsensitiveColumnMatch(t *testing.T) {
	lower := []*record.Dynamic{dyn("name", "X")}
	exact := []*record.Dynamic{dyn("Name", "X")}

	schema := Schema[person]{
		Text("Name", func(p *person, v string) { p.Name = v }),
	}

	outLower, _ := Map(lower, schema)
	outExact, _ := Map(exact, schema)

	require.Len(t, outLower, 1)
	require.Len(t, outExact, 1)
	assert.Equal(t, outExact[0], outLower[0])
}

func TestMapRecordWithNoConvertibleDataIsDropped(t *testing.T) {
	// The only present column fails conversion, leaving zero populated
	// fields.
	records := []*record.Dynamic{dyn("Age", "not_a_number")}

	schema := Schema[person]{
		Int("Age", func(p *person, v int64) { p.Age = v }),
	}

	out, report := Map(records, schema)

	assert.Empty(t, out)
	var sawNoData bool
	for _, d := range report.Diagnostics {
		if d.Reason == ReasonNoData {
			sawNoData = true
			assert.True(t, d.Dropped)
		}
	}
	assert.True(t, sawNoData)
}

func TestMapKeepBlankDisablesFilterDrop(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Name", "John", "Email", ""),
	}

	schema := Schema[person]{
		Text("Name", func(p *person, v string) { p.Name = v }),
		Text("Email", func(p *person, v string) { p.Email = v }, KeepBlank()),
	}

	out, _ := Map(records, schema)

	require.Len(t, out, 1)
	assert.Equal(t, "John", out[0].Name)
	assert.Equal(t, "", out[0].Email, "blank value with filtering off stays at the default")
}

func TestMapMixedTypeConversions(t *testing.T) {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []*record.Dynamic{
		dyn("Name", "John", "Age", 30.0, "Active", "yes", "Joined", "2024-03-01"),
	}

	schema := Schema[person]{
		Text("Name", func(p *person, v string) { p.Name = v }),
		Int("Age", func(p *person, v int64) { p.Age = v }),
		Bool("Active", func(p *person, v bool) { p.Active = v }),
		Time("Joined", func(p *person, v time.Time) { p.Joined = v }),
	}

	out, report := Map(records, schema)

	require.Len(t, out, 1)
	assert.Equal(t, int64(30), out[0].Age, "integral float converts to int")
	assert.True(t, out[0].Active)
	assert.Equal(t, joined, out[0].Joined)
	assert.Empty(t, report.Diagnostics)
}

func TestMapDeterministicAcrossRuns(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Name", "John", "Email", "", "Age", 30),
		dyn("Name", "Jane", "Email", "jane@x.com", "Age", 25),
		dyn("Name", "Ann", "Age", "invalid_number"),
	}
	schema := personSchema()

	out1, report1 := Map(records, schema)
	out2, report2 := Map(records, schema)

	assert.Equal(t, out1, out2)
	assert.Equal(t, report1, report2)
}

func TestMapPreservesSourceOrder(t *testing.T) {
	records := []*record.Dynamic{
		dyn("Name", "a"),
		dyn("Name", "b"),
		dyn("Name", "c"),
	}

	out, _ := Map(records, personSchema())

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
	assert.Equal(t, "c", out[2].Name)
}
