package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"5 000 000", 5_000_000, false},
		{"5000000", 5_000_000, false},
		{"5,000,000", 5_000_000, false},
		{"1'234'567", 1_234_567, false},
		{" 42 ", 42, false},
		{"0", 0, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"12a34", 0, true},
		{"-100", 0, true},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %d, want error", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseRate(t *testing.T) {
	if r, err := ParseRate("3,5"); err != nil || r != 3.5 {
		t.Fatalf("ParseRate(3,5) = %v, %v", r, err)
	}
	if r, err := ParseRate("5"); err != nil || r != 5 {
		t.Fatalf("ParseRate(5) = %v, %v", r, err)
	}
	for _, bad := range []string{"", "x", "-1"} {
		if _, err := ParseRate(bad); err == nil {
			t.Fatalf("ParseRate(%q): want error", bad)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("4900")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if !d.Equal(decimal.NewFromInt(4900)) {
		t.Fatalf("got %s", d)
	}
	for _, bad := range []string{"", "zero", "0", "-4900"} {
		if _, err := ParseDecimal(bad); err == nil {
			t.Fatalf("ParseDecimal(%q): want error", bad)
		}
	}
}

func TestGroupAndFormat(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1000:      "1 000",
		875000:    "875 000",
		5000000:   "5 000 000",
		244755000: "244 755 000",
		-1050000:  "-1 050 000",
	}
	for n, want := range cases {
		if got := Group(n); got != want {
			t.Errorf("Group(%d) = %q, want %q", n, got, want)
		}
	}
	if got := Format(5_000_000); got != "5 000 000 Ar" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFormatUSDT(t *testing.T) {
	d := decimal.RequireFromString("1020.408163")
	if got := FormatUSDT(d.Round(2)); got != "1020.41 USDT" {
		t.Fatalf("FormatUSDT = %q", got)
	}
}
