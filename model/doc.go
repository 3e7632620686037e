// Package model defines core types used throughout langtab.
//
// # Data Types
//
//   - Record: one (year, language) observation
//   - ErrInvalidRecord: a record that cannot be interpreted
//
// Records are plain values; everything that groups, stores or persists them
// lives in the index and snapshot packages.
package model
