package mapping

import (
	"time"

	"sheetmap/domain/record"
)

// Field declares how one target field maps to a source column. Fields are
// built through the typed constructors below, which pair the column name and
// flags with a conversion-and-assign closure so mapping needs no reflection.
type Field[T any] struct {
	Column      string
	FilterEmpty bool
	Required    bool
	assign      func(*T, record.Value) bool
}

// Schema is the ordered descriptor list for one target shape
type Schema[T any] []Field[T]

// Option adjusts a field's null/required policy
type Option func(*fieldFlags)

type fieldFlags struct {
	filterEmpty bool
	required    bool
}

// Required drops the whole record when this field ends up without data
func Required() Option {
	return func(f *fieldFlags) { f.required = true }
}

// KeepBlank disables the default filter-drop for a blank matched value
func KeepBlank() Option {
	return func(f *fieldFlags) { f.filterEmpty = false }
}

func newField[T any](column string, target record.Kind, set func(*T, record.Value), opts ...Option) Field[T] {
	flags := fieldFlags{filterEmpty: true}
	for _, opt := range opts {
		opt(&flags)
	}
	return Field[T]{
		Column:      column,
		FilterEmpty: flags.filterEmpty,
		Required:    flags.required,
		assign: func(t *T, v record.Value) bool {
			converted, ok := record.Convert(v, target)
			if !ok {
				return false
			}
			set(t, converted)
			return true
		},
	}
}

// Text maps a column onto a string field
func Text[T any](column string, set func(*T, string), opts ...Option) Field[T] {
	return newField(column, record.KindText, func(t *T, v record.Value) {
		set(t, v.AsText())
	}, opts...)
}

// Int maps a column onto an integer field
func Int[T any](column string, set func(*T, int64), opts ...Option) Field[T] {
	return newField(column, record.KindInt, func(t *T, v record.Value) {
		set(t, v.AsInt())
	}, opts...)
}

// Float maps a column onto a float field
func Float[T any](column string, set func(*T, float64), opts ...Option) Field[T] {
	return newField(column, record.KindFloat, func(t *T, v record.Value) {
		set(t, v.AsFloat())
	}, opts...)
}

// Bool maps a column onto a boolean field
func Bool[T any](column string, set func(*T, bool), opts ...Option) Field[T] {
	return newField(column, record.KindBool, func(t *T, v record.Value) {
		set(t, v.AsBool())
	}, opts...)
}

// Time maps a column onto a timestamp field
func Time[T any](column string, set func(*T, time.Time), opts ...Option) Field[T] {
	return newField(column, record.KindTimestamp, func(t *T, v record.Value) {
		set(t, v.AsTimestamp())
	}, opts...)
}
