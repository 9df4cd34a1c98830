package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize is matched by every SizeParsingError.
var ErrInvalidSize = errors.New("invalid size")

// SizeParsingError is returned when a size text is not "<float> <KiB|MiB|GiB|TiB>".
type SizeParsingError struct {
	Text string
}

func (e *SizeParsingError) Error() string {
	return fmt.Sprintf("invalid size: `%s`", e.Text)
}

func (e *SizeParsingError) Is(target error) bool {
	return target == ErrInvalidSize
}

type Unit uint8

const (
	KB Unit = iota
	MB
	GB
	TB
)

var unitSuffixes = [...]string{
	KB: "KiB",
	MB: "MiB",
	GB: "GiB",
	TB: "TiB",
}

func (u Unit) String() string {
	if int(u) < len(unitSuffixes) {
		return unitSuffixes[u]
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// Size is a file size as shown on the listing, e.g. "700.0 MiB".
type Size struct {
	Unit  Unit
	Value float64
}

func Kibibytes(v float64) Size { return Size{Unit: KB, Value: v} }
func Mebibytes(v float64) Size { return Size{Unit: MB, Value: v} }
func Gibibytes(v float64) Size { return Size{Unit: GB, Value: v} }
func Tebibytes(v float64) Size { return Size{Unit: TB, Value: v} }

// ParseSize parses the inverse of Size.String. The numeric part and the unit
// are split on the first space.
func ParseSize(s string) (Size, error) {
	value, unit, ok := strings.Cut(s, " ")
	if !ok {
		return Size{}, &SizeParsingError{Text: s}
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Size{}, &SizeParsingError{Text: s}
	}

	for u, suffix := range unitSuffixes {
		if unit == suffix {
			return Size{Unit: Unit(u), Value: v}, nil
		}
	}
	return Size{}, &SizeParsingError{Text: s}
}

func (s Size) String() string {
	return fmt.Sprintf("%.1f %s", s.Value, s.Unit)
}

// InKibibytes converts the size to KiB using a 1024 multiplier per unit step.
func (s Size) InKibibytes() float64 {
	v := s.Value
	for u := KB; u < s.Unit; u++ {
		v *= 1024
	}
	return v
}

// Compare returns -1, 0 or +1. Sizes that are not comparable (NaN) compare as 0.
func (s Size) Compare(o Size) int {
	a, b := s.InKibibytes(), o.InKibibytes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (s Size) Less(o Size) bool {
	return s.Compare(o) < 0
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
