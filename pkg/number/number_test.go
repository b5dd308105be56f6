package number

import (
	"testing"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

func TestParseRat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"8", "8", false},
		{" -11/7 ", "-11/7", false},
		{"6/4", "3/2", false},
		{"1.25", "5/4", false},
		{"abc", "", true},
		{"1/0", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRat(tt.in)
			if tt.wantErr {
				if !errs.Is(err, errs.ErrCodeInvalidInput) {
					t.Errorf("ParseRat(%q) error = %v, want INVALID_INPUT", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRat(%q) error: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseRat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRat_ExactArithmetic(t *testing.T) {
	eight, three := RatFromInt(8), RatFromInt(3)

	// 8 / (3 - 8/3) = 24
	got := eight.Quo(three.Sub(eight.Quo(three)))
	if !got.Equal(RatFromInt(24)) {
		t.Errorf("8/(3-8/3) = %s, want 24", got)
	}
	if !got.IsInt() {
		t.Errorf("expected integer result")
	}

	if s := eight.Quo(three).String(); s != "8/3" {
		t.Errorf("8/3 formats as %q", s)
	}
	if eight.String() != "8" {
		t.Errorf("8 formats as %q", eight.String())
	}
}

func TestRat_ZeroValue(t *testing.T) {
	var z Rat
	if !z.IsZero() {
		t.Error("zero value should be 0")
	}
	if z.String() != "0" {
		t.Errorf("zero value formats as %q", z.String())
	}
	if got := z.Add(RatFromInt(2)); !got.Equal(RatFromInt(2)) {
		t.Errorf("0 + 2 = %s", got)
	}
}

func TestRat_Immutable(t *testing.T) {
	a := NewRat(1, 2)
	b := NewRat(1, 3)
	_ = a.Add(b)
	_ = a.Mul(b)
	if a.String() != "1/2" || b.String() != "1/3" {
		t.Errorf("operands changed: a=%s b=%s", a, b)
	}
	if a.Cmp(b) != 1 {
		t.Errorf("1/2 should compare greater than 1/3")
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in      string
		want    Float
		wantErr bool
	}{
		{"24", 24, false},
		{"2.5", 2.5, false},
		{"1/4", 0.25, false},
		{"x", 0, true},
		{"1/x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFloat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFloat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat_Equal(t *testing.T) {
	eight, three := Float(8), Float(3)
	got := eight.Quo(three.Sub(eight.Quo(three)))
	if !got.Equal(24) {
		t.Errorf("8/(3-8/3) = %v, want ~24", got)
	}
	if Float(24).Equal(24.001) {
		t.Error("24 should not equal 24.001")
	}
	if !Float(0).Equal(1e-12) {
		t.Error("tiny values should equal zero")
	}
	if Float(1e-12).IsZero() {
		t.Error("IsZero should be exact")
	}
	if Float(0.5).String() != "0.5" {
		t.Errorf("0.5 formats as %q", Float(0.5).String())
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"8", "8", "3", "3"}, ParseRat)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[2].String() != "3" {
		t.Errorf("ParseAll = %v", got)
	}

	_, err = ParseAll([]string{"1", "two"}, ParseFloat)
	if err == nil || !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParseAll error = %v, want INVALID_INPUT", err)
	}
}
