package model

import (
	"fmt"
)

// Record represents one (year, language) observation: the language was
// created in the given year.
//
// Multiple records may share a year. A given (year, language) pair is
// expected to appear once in well-formed input, but duplicates are legal and
// are counted as separate entries.
type Record struct {
	Year     int    `json:"year"`
	Language string `json:"language"`
}

// String returns a string representation of the Record.
func (r Record) String() string {
	return fmt.Sprintf("(%d, %s)", r.Year, r.Language)
}

// Validate reports whether the record can be indexed.
// An empty language name is the only invalid state a parsed Record can carry;
// a non-integer year is rejected earlier, by the record source.
func (r Record) Validate() error {
	if r.Language == "" {
		return &ErrInvalidRecord{Field: "language", Reason: "empty language name"}
	}
	return nil
}

// ErrInvalidRecord indicates a record that cannot be interpreted.
//
// It is raised at construction/parse time and propagates immediately;
// construction never partially succeeds. The original underlying error
// (if any) can be accessed via errors.Unwrap.
type ErrInvalidRecord struct {
	Line   int    // 1-based input line, 0 when unknown
	Field  string // "year", "language" or "record"
	Reason string
	cause  error
}

func (e *ErrInvalidRecord) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid record at line %d: %s: %s", e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Reason)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.cause }

// InvalidRecord constructs an *ErrInvalidRecord with an underlying cause.
// It is used by record sources to attach input positions to parse failures.
func InvalidRecord(line int, field, reason string, cause error) *ErrInvalidRecord {
	return &ErrInvalidRecord{Line: line, Field: field, Reason: reason, cause: cause}
}
