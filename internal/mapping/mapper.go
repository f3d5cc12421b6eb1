package mapping

import (
	"log"

	"sheetmap/domain/record"
)

// Map projects dynamic records onto the target shape declared by the schema.
// Output order matches source order and the run is deterministic: the same
// records and schema always produce identical output. Never fails; when
// nothing qualifies the result is empty and the report says why.
func Map[T any](records []*record.Dynamic, schema Schema[T]) ([]T, Report) {
	report := Report{SourceCount: len(records)}

	if len(schema) == 0 {
		log.Printf("[TypedMapper] Schema has no field descriptors, yielding no records")
		return nil, report
	}

	var out []T
	for i, rec := range records {
		mapped, diags := mapRecord(i, rec, schema)
		report.Diagnostics = append(report.Diagnostics, diags...)
		if mapped != nil {
			out = append(out, *mapped)
		}
	}

	report.KeptCount = len(out)
	if report.DroppedCount() > 0 {
		log.Printf("[TypedMapper] Dropped %d of %d source records", report.DroppedCount(), report.SourceCount)
	}

	return out, report
}

// mapRecord applies every descriptor in declaration order to one source
// record. Returns nil when the record is dropped.
func mapRecord[T any](index int, rec *record.Dynamic, schema Schema[T]) (*T, []Diagnostic) {
	var target T
	var diags []Diagnostic

	hasData := false
	satisfied := make([]bool, len(schema))

	for fi, field := range schema {
		value, found := rec.Lookup(field.Column)
		if !found {
			// Absent column: the field stays at its default. Only the
			// required check below can still drop the record.
			continue
		}

		if value.IsBlank() {
			if field.FilterEmpty {
				// Filter-drop aborts the whole record, no partial output.
				diags = append(diags, Diagnostic{
					RecordIndex: index,
					Column:      field.Column,
					Reason:      ReasonFilterEmpty,
					Dropped:     true,
				})
				return nil, diags
			}
			continue
		}

		if field.assign(&target, value) {
			hasData = true
			satisfied[fi] = true
		} else {
			diags = append(diags, Diagnostic{
				RecordIndex: index,
				Column:      field.Column,
				Reason:      ReasonConversionFailed,
			})
		}
	}

	if !hasData {
		diags = append(diags, Diagnostic{
			RecordIndex: index,
			Reason:      ReasonNoData,
			Dropped:     true,
		})
		return nil, diags
	}

	for fi, field := range schema {
		if field.Required && !satisfied[fi] {
			diags = append(diags, Diagnostic{
				RecordIndex: index,
				Column:      field.Column,
				Reason:      ReasonRequiredMissing,
				Dropped:     true,
			})
			return nil, diags
		}
	}

	return &target, diags
}
