package profile

import (
	"sheetmap/domain/record"
)

// Thresholds define the share of classifiable values a column needs before
// a kind is recommended for it.
type Thresholds struct {
	Numeric   float64 `json:"numeric"`
	Boolean   float64 `json:"boolean"`
	Timestamp float64 `json:"timestamp"`
}

// DefaultThresholds returns sensible defaults
func DefaultThresholds() Thresholds {
	return Thresholds{
		Numeric:   0.8,
		Boolean:   0.9,
		Timestamp: 0.8,
	}
}

// ColumnProfile summarizes one column across all extracted records
type ColumnProfile struct {
	Name           string          `json:"name"`
	Count          int             `json:"count"`
	NumericRatio   float64         `json:"numeric_ratio"`
	BooleanRatio   float64         `json:"boolean_ratio"`
	TimestampRatio float64         `json:"timestamp_ratio"`
	Recommended    record.Kind     `json:"recommended"`
	Summary        *NumericSummary `json:"summary,omitempty"`
}

// Profiler analyzes extracted records per column. Informational only: the
// profile never influences which records survive mapping.
type Profiler struct {
	thresholds Thresholds
}

// NewProfiler creates a profiler with the given thresholds
func NewProfiler(thresholds Thresholds) *Profiler {
	return &Profiler{thresholds: thresholds}
}

// Profile analyzes the columns present across the given records, in first
// appearance order.
func (p *Profiler) Profile(records []*record.Dynamic) []ColumnProfile {
	var order []string
	seen := make(map[string]bool)
	columns := make(map[string][]record.Value)

	for _, rec := range records {
		for _, key := range rec.Keys() {
			if !seen[key] {
				seen[key] = true
				order = append(order, key)
			}
			if v, ok := rec.Get(key); ok {
				columns[key] = append(columns[key], v)
			}
		}
	}

	profiles := make([]ColumnProfile, 0, len(order))
	for _, name := range order {
		profiles = append(profiles, p.profileColumn(name, columns[name]))
	}
	return profiles
}

func (p *Profiler) profileColumn(name string, values []record.Value) ColumnProfile {
	prof := ColumnProfile{Name: name, Count: len(values)}
	if len(values) == 0 {
		prof.Recommended = record.KindText
		return prof
	}

	var numeric []float64
	numericCount, booleanCount, timestampCount := 0, 0, 0

	for _, v := range values {
		if converted, ok := record.Convert(v, record.KindFloat); ok {
			numericCount++
			numeric = append(numeric, converted.AsFloat())
		}
		if _, ok := record.Convert(v, record.KindBool); ok {
			booleanCount++
		}
		if _, ok := record.Convert(v, record.KindTimestamp); ok {
			timestampCount++
		}
	}

	total := float64(len(values))
	prof.NumericRatio = float64(numericCount) / total
	prof.BooleanRatio = float64(booleanCount) / total
	prof.TimestampRatio = float64(timestampCount) / total
	prof.Recommended = p.recommend(prof)

	if prof.Recommended == record.KindFloat && len(numeric) > 0 {
		if summary, err := Summarize(numeric); err == nil {
			prof.Summary = summary
		}
	}

	return prof
}

// recommend chooses the column kind, checking the most restrictive
// classification first.
func (p *Profiler) recommend(prof ColumnProfile) record.Kind {
	if prof.BooleanRatio >= p.thresholds.Boolean {
		return record.KindBool
	}
	if prof.NumericRatio >= p.thresholds.Numeric {
		return record.KindFloat
	}
	if prof.TimestampRatio >= p.thresholds.Timestamp {
		return record.KindTimestamp
	}
	return record.KindText
}
