// Package format renders salary amounts for chat and tool output.
package format

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// Rookie is shown for a zero salary; rookie contracts are the only
	// legitimate source of one.
	Rookie = "Rookie"
	// Missing is shown when the source document carried no amount.
	Missing = "n/a"

	million  = 1_000_000
	thousand = 1_000
)

type Options struct {
	// Rookie shows a zero amount as Rookie. Only player salaries use it; a
	// zero cap or delta is a plain "$0".
	Rookie bool
	// Plus prefixes positive amounts with "+", for deltas.
	Plus bool
	// Decimals is the number of decimal places of the million tier.
	Decimals int
	// Thousands renders amounts in [1000, 1e6) as "$Xk".
	Thousands bool
}

// DefaultOptions is one decimal place, no sign, no thousands tier.
var DefaultOptions = Options{Decimals: 1}

// PlayerOptions render a player's salary: zero is a rookie contract and
// amounts under a million use the thousands tier.
var PlayerOptions = Options{Rookie: true, Decimals: 1, Thousands: true}

// Salary formats a player's salary with PlayerOptions.
func Salary(amount float64) string {
	return SalaryWith(amount, PlayerOptions)
}

// Cap formats a cap figure or an average with DefaultOptions.
func Cap(amount float64) string {
	return SalaryWith(amount, DefaultOptions)
}

// Delta formats a signed difference between two cap figures.
func Delta(amount float64) string {
	return SalaryWith(amount, Options{Plus: true, Decimals: 1})
}

func SalaryWith(amount float64, opts Options) string {
	switch {
	case math.IsNaN(amount):
		return Missing
	case amount == 0 && opts.Rookie:
		return Rookie
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	} else if opts.Plus && amount > 0 {
		sign = "+"
	}

	decimals := opts.Decimals
	if decimals < 0 {
		decimals = 0
	}

	switch {
	case amount >= million:
		return fmt.Sprintf("%s$%s Mio.", sign, strconv.FormatFloat(amount/million, 'f', decimals, 64))
	case opts.Thousands && amount >= thousand:
		return fmt.Sprintf("%s$%sk", sign, strconv.FormatFloat(amount/thousand, 'f', 0, 64))
	default:
		return fmt.Sprintf("%s$%s", sign, strconv.FormatFloat(amount, 'f', -1, 64))
	}
}
