// Package columnar implements the tabular backing representation: records
// are held as parallel year and language columns, and each query scans only
// the column it needs.
package columnar

import (
	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
)

func init() {
	index.Register(index.KindColumnar, func() index.Index { return New() })
}

// Index stores the record set column-major. Row i of the logical table is
// (years[i], languages[i]); both slices always have equal length.
type Index struct {
	years     []int
	languages []string
}

// New creates an empty columnar index.
func New() *Index {
	return &Index{}
}

// Insert appends one record to both columns.
func (i *Index) Insert(rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	i.years = append(i.years, rec.Year)
	i.languages = append(i.languages, rec.Language)
	return nil
}

// YearCreated scans the language column and returns the year at the first
// matching row.
func (i *Index) YearCreated(language string) (int, error) {
	for row, lang := range i.languages {
		if lang == language {
			return i.years[row], nil
		}
	}
	return 0, index.ErrNotFound
}

// CountCreatedInYear filter-counts the year column.
func (i *Index) CountCreatedInYear(year int) int {
	count := 0
	for _, y := range i.years {
		if y == year {
			count++
		}
	}
	return count
}

// Len returns the number of rows.
func (i *Index) Len() int { return len(i.years) }

// Kind returns index.KindColumnar.
func (i *Index) Kind() index.Kind { return index.KindColumnar }

// Records zips the columns back into records in input order.
func (i *Index) Records() []model.Record {
	out := make([]model.Record, len(i.years))
	for row := range i.years {
		out[row] = model.Record{Year: i.years[row], Language: i.languages[row]}
	}
	return out
}
