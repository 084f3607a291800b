package domain

import "github.com/shopspring/decimal"

// BaseUnitsPerThousand converts source amounts (recorded in thousands) to full currency units.
const BaseUnitsPerThousand = 1000

const Currency = "PHP"

// Money is an amount recorded in thousands of currency units.
// The base-unit value is always derived from the thousands value.
type Money struct {
	thousands float64
}

func NewMoney(thousands float64) Money {
	return Money{thousands: thousands}
}

// Amount returns the value in thousands.
func (m Money) Amount() float64 {
	return m.thousands
}

// BaseUnits returns the full-currency value.
func (m Money) BaseUnits() float64 {
	return m.thousands * BaseUnitsPerThousand
}

func (m Money) Add(o Money) Money {
	return Money{thousands: m.thousands + o.thousands}
}

func (m Money) Sub(o Money) Money {
	return Money{thousands: m.thousands - o.thousands}
}

func (m Money) Neg() Money {
	return Money{thousands: -m.thousands}
}

func (m Money) IsZero() bool {
	return m.thousands == 0
}

// SumMoney adds the amounts left to right.
func SumMoney(items ...Money) Money {
	var total Money
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}

// Round2 rounds a value to two decimal places for presentation.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
