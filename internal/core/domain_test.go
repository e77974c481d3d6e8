package core

import (
	"errors"
	"testing"
)

func TestParseDateKey(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"01-01-2025", true},
		{"31-02-2025", true}, // calendar validity is not checked
		{"1-01-2025", false},
		{"01/01/2025", false},
		{"01-01-25", false},
		{"aa-bb-cccc", false},
		{"", false},
		{"01-01-20256", false},
	}
	for i, tc := range cases {
		_, err := ParseDateKey(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d (%q) expected ok, got %v", i, tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d (%q) expected error", i, tc.in)
		}
	}
}

func TestNewSchemaRejectsBadFields(t *testing.T) {
	if _, err := NewSchema(); !errors.Is(err, ErrEmptySchema) {
		t.Fatalf("expected ErrEmptySchema, got %v", err)
	}
	if _, err := NewSchema(Numeric("A", 1), Numeric("A", 2)); !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
	if _, err := NewSchema(Numeric("", 1)); !errors.Is(err, ErrEmptyFieldName) {
		t.Fatalf("expected ErrEmptyFieldName, got %v", err)
	}
	if _, err := NewSchema(Numeric("A", -1)); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestSchemaHeaderAndIndex(t *testing.T) {
	s := MustSchema(Numeric("Tahajjud", 2), FreeText("Notes"))

	h := s.Header()
	want := []string{"Date", "Tahajjud", "Notes"}
	if len(h) != len(want) {
		t.Fatalf("header length: got %d want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("header[%d]: got %q want %q", i, h[i], want[i])
		}
	}

	if i, err := s.Index("Notes"); err != nil || i != 1 {
		t.Fatalf("Index(Notes): got %d, %v", i, err)
	}
	if _, err := s.Index("Nope"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSchemaDefaultValue(t *testing.T) {
	s := MustSchema(Numeric("Tahajjud", 2), FreeText("Notes"))

	v, err := s.DefaultValue("Tahajjud")
	if err != nil || v != "2" {
		t.Fatalf("DefaultValue(Tahajjud): got %q, %v", v, err)
	}
	if _, err := s.DefaultValue("Notes"); !errors.Is(err, ErrNoDefault) {
		t.Fatalf("expected ErrNoDefault, got %v", err)
	}
	if _, err := s.DefaultValue("Nope"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSeedRowFillsEveryColumnWithZero(t *testing.T) {
	s := MustSchema(Numeric("Tahajjud", 2), FreeText("Notes"))
	r := s.SeedRow("01-01-2025")
	if r.Date != "01-01-2025" {
		t.Fatalf("date: got %s", r.Date)
	}
	if len(r.Values) != 2 {
		t.Fatalf("values: got %d want 2", len(r.Values))
	}
	for i, v := range r.Values {
		if v != SeedValue {
			t.Fatalf("value[%d]: got %q want %q", i, v, SeedValue)
		}
	}
}

func TestDefaultActivities(t *testing.T) {
	s := DefaultActivities()
	if s.Len() != 24 {
		t.Fatalf("expected 24 fields, got %d", s.Len())
	}
	// Column order is load-bearing for existing files.
	if s.Header()[1] != "Tahajjud" {
		t.Fatalf("first column: got %q", s.Header()[1])
	}
	for _, name := range []string{FieldMemorization, FieldRevision} {
		f, err := s.Field(name)
		if err != nil {
			t.Fatalf("Field(%s): %v", name, err)
		}
		if !f.FreeText {
			t.Fatalf("%s should be free-text", name)
		}
	}
	if f, _ := s.Field("Zohar_4_Faraz"); f.Default != 4 {
		t.Fatalf("Zohar_4_Faraz default: got %d", f.Default)
	}
}

func TestRowValue(t *testing.T) {
	s := MustSchema(Numeric("A", 1), FreeText("B"))
	r := Row{Date: "01-01-2025", Values: []string{"1", "x"}}

	if v, err := r.Value(s, "B"); err != nil || v != "x" {
		t.Fatalf("Value(B): got %q, %v", v, err)
	}

	short := Row{Date: "01-01-2025", Values: []string{"1"}}
	if _, err := short.Value(s, "B"); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
}
