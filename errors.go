package langtab

import (
	"errors"
	"fmt"

	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
)

var (
	// ErrNotFound is returned when a language is not in the table.
	ErrNotFound = errors.New("not found")
)

// IsNotFound reports whether err means the queried language has no record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidRecord reports whether err stems from a malformed input record.
func IsInvalidRecord(err error) bool {
	var ir *model.ErrInvalidRecord
	return errors.As(err, &ir)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, index.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
