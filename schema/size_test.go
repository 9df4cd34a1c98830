package schema

import (
	"errors"
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr bool
	}{
		{name: "kibibytes", input: "1 KiB", want: Kibibytes(1)},
		{name: "mebibytes", input: "1 MiB", want: Mebibytes(1)},
		{name: "gibibytes", input: "1 GiB", want: Gibibytes(1)},
		{name: "tebibytes", input: "1 TiB", want: Tebibytes(1)},
		{name: "fractional", input: "700.5 MiB", want: Mebibytes(700.5)},
		{name: "no space", input: "bogus", wantErr: true},
		{name: "bad number", input: "abc MiB", wantErr: true},
		{name: "decimal unit", input: "1 MB", wantErr: true},
		{name: "lowercase unit", input: "1 mib", wantErr: true},
		{name: "trailing text", input: "1 MiB extra", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSize", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizeParsingErrorMessage(t *testing.T) {
	_, err := ParseSize("bogus")
	var sizeErr *SizeParsingError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("ParseSize() error = %T, want *SizeParsingError", err)
	}
	if got, want := err.Error(), "invalid size: `bogus`"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSizeString(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{Kibibytes(1.2), "1.2 KiB"},
		{Mebibytes(33.04), "33.0 MiB"},
		{Gibibytes(1), "1.0 GiB"},
		{Tebibytes(1), "1.0 TiB"},
	}
	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSizeRoundTrip(t *testing.T) {
	for _, s := range []string{"1.0 KiB", "700.0 MiB", "4.3 GiB", "1.5 TiB"} {
		parsed, err := ParseSize(s)
		if err != nil {
			t.Fatalf("ParseSize(%q) failed: %v", s, err)
		}
		if got := parsed.String(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestSizeOrdering(t *testing.T) {
	ordered := []struct{ a, b Size }{
		{Kibibytes(1), Mebibytes(1)},
		{Mebibytes(1), Gibibytes(1)},
		{Gibibytes(1), Tebibytes(1)},
		{Kibibytes(33.4), Mebibytes(44.5)},
		{Mebibytes(33.4), Gibibytes(44.5)},
		{Gibibytes(33.4), Gibibytes(44.5)},
		{Tebibytes(33.4), Tebibytes(44.5)},
		{Mebibytes(2047), Gibibytes(2)},
	}
	for _, o := range ordered {
		if !o.a.Less(o.b) {
			t.Errorf("%v should be less than %v", o.a, o.b)
		}
		if o.b.Less(o.a) {
			t.Errorf("%v should not be less than %v", o.b, o.a)
		}
	}

	if c := Mebibytes(1).Compare(Kibibytes(1024)); c != 0 {
		t.Errorf("1 MiB vs 1024 KiB = %d, want 0", c)
	}
	if c := Mebibytes(math.NaN()).Compare(Kibibytes(1)); c != 0 {
		t.Errorf("NaN compare = %d, want 0", c)
	}
}

func TestSizeText(t *testing.T) {
	b, err := Gibibytes(1.5).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1.5 GiB" {
		t.Errorf("MarshalText() = %q", b)
	}

	var s Size
	if err := s.UnmarshalText([]byte("12.0 TiB")); err != nil {
		t.Fatal(err)
	}
	if s != Tebibytes(12) {
		t.Errorf("UnmarshalText() = %v", s)
	}
	if err := s.UnmarshalText([]byte("12 PB")); err == nil {
		t.Error("UnmarshalText() succeeded unexpectedly")
	}
}
