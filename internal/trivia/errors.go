package trivia

import (
	"errors"
	"fmt"
)

// The service maps every failure into one of two taxonomy buckets. The
// mapping is deliberately coarse and, in places, quirky (a delete of a
// missing id is Unprocessable, a malformed quiz request is NotFound); both
// mappings are part of the API contract and covered by tests.
var (
	// ErrNotFound marks failures surfaced to clients as 404.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable marks failures surfaced to clients as 422.
	ErrUnprocessable = errors.New("unprocessable entity")
)

func notFound(err error) error {
	return fmt.Errorf("%w: %v", ErrNotFound, err)
}

func unprocessable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnprocessable, err)
}
