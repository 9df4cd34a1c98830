package extractor

import (
	"errors"
	"fmt"
)

// ErrSelector is matched by SelectorError and IntegerParsingError.
var ErrSelector = errors.New("selector error")

// SelectorError reports an element or attribute missing from a row.
type SelectorError struct {
	Row   int
	Field string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector error: %s not found (row %d)", e.Field, e.Row)
}

func (e *SelectorError) Is(target error) bool {
	return target == ErrSelector
}

// IntegerParsingError reports a counter or timestamp cell that is not an integer.
type IntegerParsingError struct {
	Row   int
	Field string
	Text  string
	Err   error
}

func (e *IntegerParsingError) Error() string {
	return fmt.Sprintf("selector error: invalid %s %q (row %d): %v", e.Field, e.Text, e.Row, e.Err)
}

func (e *IntegerParsingError) Unwrap() error {
	return e.Err
}

func (e *IntegerParsingError) Is(target error) bool {
	return target == ErrSelector
}
