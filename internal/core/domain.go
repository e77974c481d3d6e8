package core

import (
	"errors"
	"fmt"
	"time"
)

// SeedValue is written into every column when a row is first created.
// Free-text columns get the literal zero too; existing log files depend
// on that fill, so it is kept.
const SeedValue = "0"

// DateFormat is the on-disk date layout (dd-mm-yyyy).
const DateFormat = "02-01-2006"

type (
	// Field is one tracked activity: either a numeric activity with a
	// fixed completion count, or a free-text entry.
	Field struct {
		Name     string
		Default  int
		FreeText bool
	}

	// Schema is the fixed, ordered field list a log is built around.
	// It is always passed in explicitly; there is no process-wide default.
	Schema struct {
		fields []Field
		index  map[string]int
	}

	// DateKey is a dd-mm-yyyy date string. Only the shape is checked,
	// never calendar validity (day 31 in a 30-day month is accepted).
	DateKey string

	// Row holds the values for one date, ordered like the schema.
	Row struct {
		Date   DateKey
		Values []string
	}
)

var (
	ErrInvalidDate    = errors.New("invalid date: want dd-mm-yyyy")
	ErrEmptySchema    = errors.New("schema has no fields")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrEmptyFieldName = errors.New("empty field name")
	ErrNegativeCount  = errors.New("negative default count")
	ErrUnknownField   = errors.New("unknown field")
	ErrNoDefault      = errors.New("free-text field has no default count")
	ErrLogMissing     = errors.New("no log recorded yet")
	ErrDateNotFound   = errors.New("date not present in log")
	ErrMalformedRow   = errors.New("malformed row")
)

// Numeric builds a field logged at a fixed completion count.
func Numeric(name string, count int) Field {
	return Field{Name: name, Default: count}
}

// FreeText builds a field that accepts arbitrary user text.
func FreeText(name string) Field {
	return Field{Name: name, FreeText: true}
}

func (f Field) Validate() error {
	if f.Name == "" {
		return ErrEmptyFieldName
	}
	if !f.FreeText && f.Default < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeCount, f.Name)
	}
	return nil
}

// NewSchema builds a schema from an ordered field list. Field order
// defines column order on disk and must never change for an existing
// log file.
func NewSchema(fields ...Field) (Schema, error) {
	if len(fields) == 0 {
		return Schema{}, ErrEmptySchema
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if err := f.Validate(); err != nil {
			return Schema{}, err
		}
		if _, dup := index[f.Name]; dup {
			return Schema{}, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		index[f.Name] = i
	}
	return Schema{fields: append([]Field(nil), fields...), index: index}, nil
}

// MustSchema is NewSchema for fixed tables known at compile time.
func MustSchema(fields ...Field) Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of fields (the date column excluded).
func (s Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the ordered field list.
func (s Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Header returns the CSV header: "Date" followed by the field names.
func (s Schema) Header() []string {
	h := make([]string, 0, len(s.fields)+1)
	h = append(h, "Date")
	for _, f := range s.fields {
		h = append(h, f.Name)
	}
	return h
}

// Index returns the position of a field within the schema.
func (s Schema) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return i, nil
}

// Field looks a field up by name.
func (s Schema) Field(name string) (Field, error) {
	i, err := s.Index(name)
	if err != nil {
		return Field{}, err
	}
	return s.fields[i], nil
}

// DefaultValue returns the value written when an activity is logged
// without explicit input: the fixed completion count as a string.
// Free-text fields have no such default.
func (s Schema) DefaultValue(name string) (string, error) {
	f, err := s.Field(name)
	if err != nil {
		return "", err
	}
	if f.FreeText {
		return "", fmt.Errorf("%w: %q", ErrNoDefault, name)
	}
	return fmt.Sprintf("%d", f.Default), nil
}

// SeedRow returns a freshly created row for date, every column filled
// with SeedValue.
func (s Schema) SeedRow(date DateKey) Row {
	values := make([]string, len(s.fields))
	for i := range values {
		values[i] = SeedValue
	}
	return Row{Date: date, Values: values}
}

// ParseDateKey checks the dd-mm-yyyy shape: length, dash positions and
// digit runs. Calendar correctness is deliberately not checked.
func ParseDateKey(s string) (DateKey, error) {
	if len(s) != 10 || s[2] != '-' || s[5] != '-' {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	for i, r := range s {
		if i == 2 || i == 5 {
			continue
		}
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
	}
	return DateKey(s), nil
}

// Today returns the current local date as a DateKey.
func Today() DateKey {
	return DateKey(time.Now().Format(DateFormat))
}

func (d DateKey) String() string { return string(d) }

// Value returns the row's value for a named field.
func (r Row) Value(s Schema, name string) (string, error) {
	i, err := s.Index(name)
	if err != nil {
		return "", err
	}
	if i >= len(r.Values) {
		return "", fmt.Errorf("%w: date %s has %d values", ErrMalformedRow, r.Date, len(r.Values))
	}
	return r.Values[i], nil
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	return Row{Date: r.Date, Values: append([]string(nil), r.Values...)}
}

// CloneRows deep-copies a row set.
func CloneRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Clone())
	}
	return out
}
