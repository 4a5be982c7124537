package format

import (
	"math"
	"testing"
)

func TestSalaryWith(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		opts   Options
		want   string
	}{
		{"zero player salary is rookie", 0, PlayerOptions, "Rookie"},
		{"zero cap is plain", 0, DefaultOptions, "$0"},
		{"zero delta has no sign", 0, Options{Plus: true, Decimals: 1}, "$0"},
		{"millions one decimal", 3_000_000, DefaultOptions, "$3.0 Mio."},
		{"millions rounding", 12_345_678, DefaultOptions, "$12.3 Mio."},
		{"millions two decimals", 1_250_000, Options{Decimals: 2}, "$1.25 Mio."},
		{"millions no decimals", 1_600_000, Options{}, "$2 Mio."},
		{"exactly one million", 1_000_000, DefaultOptions, "$1.0 Mio."},
		{"below threshold plain", 750_000, DefaultOptions, "$750000"},
		{"below threshold fraction", 12.5, DefaultOptions, "$12.5"},
		{"thousands tier", 750_000, Options{Decimals: 1, Thousands: true}, "$750k"},
		{"thousands tier below 1000", 999, Options{Decimals: 1, Thousands: true}, "$999"},
		{"positive delta", 2_000_000, Options{Plus: true, Decimals: 1}, "+$2.0 Mio."},
		{"negative delta", -2_000_000, Options{Plus: true, Decimals: 1}, "-$2.0 Mio."},
		{"negative without plus", -500, DefaultOptions, "-$500"},
		{"negative decimals clamp", 5_000_000, Options{Decimals: -3}, "$5 Mio."},
		{"missing", math.NaN(), DefaultOptions, "n/a"},
		{"missing player salary", math.NaN(), PlayerOptions, "n/a"},
		{"player salary thousands", 500_000, PlayerOptions, "$500k"},
		{"player salary millions", 4_200_000, PlayerOptions, "$4.2 Mio."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SalaryWith(tt.amount, tt.opts); got != tt.want {
				t.Errorf("SalaryWith(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestSalaryCapAndDelta(t *testing.T) {
	if got := Salary(0); got != Rookie {
		t.Errorf("Salary(0) = %q, want %q", got, Rookie)
	}
	if got := Cap(0); got != "$0" {
		t.Errorf("Cap(0) = %q, want %q", got, "$0")
	}
	if got := Delta(0); got != "$0" {
		t.Errorf("Delta(0) = %q, want %q", got, "$0")
	}
}

func TestDelta(t *testing.T) {
	if got := Delta(-2_000_000); got != "-$2.0 Mio." {
		t.Errorf("Delta(-2e6) = %q, want %q", got, "-$2.0 Mio.")
	}
	if got := Delta(1_500_000); got != "+$1.5 Mio." {
		t.Errorf("Delta(1.5e6) = %q, want %q", got, "+$1.5 Mio.")
	}
}
