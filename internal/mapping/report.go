package mapping

// DropReason classifies why a record or field lost data during mapping
type DropReason string

const (
	// ReasonFilterEmpty: a filterNullOrEmpty field matched a blank value,
	// dropping the whole record.
	ReasonFilterEmpty DropReason = "filter_empty"
	// ReasonRequiredMissing: a required field ended up without data.
	ReasonRequiredMissing DropReason = "required_missing"
	// ReasonNoData: no field received any converted value.
	ReasonNoData DropReason = "no_data"
	// ReasonConversionFailed: a matched value could not convert to the
	// field's type. Non-fatal on its own; the field stays at its default.
	ReasonConversionFailed DropReason = "conversion_failed"
)

// Diagnostic records one mapping event for one source record. Conversion
// failures are diagnostics without a drop; the other reasons accompany a
// dropped record.
type Diagnostic struct {
	RecordIndex int        `json:"record_index"`
	Column      string     `json:"column,omitempty"`
	Reason      DropReason `json:"reason"`
	Dropped     bool       `json:"dropped"`
}

// Report summarizes one mapping run
type Report struct {
	SourceCount int          `json:"source_count"`
	KeptCount   int          `json:"kept_count"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// DroppedCount returns how many source records did not survive mapping
func (r Report) DroppedCount() int {
	return r.SourceCount - r.KeptCount
}
