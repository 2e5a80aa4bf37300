// Package money agrupa helpers de aritmética decimal para montos y
// cantidades. Todo el dinero de la aplicación se maneja con
// shopspring/decimal; nunca float64.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 redondea a 2 decimales (centavos de quetzal).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent devuelve el pct% de base, redondeado a centavos.
// Percent(150, 10) = 15.00.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred).Round(2)
}

// ClampMin devuelve d si d >= min, si no min.
func ClampMin(d, min decimal.Decimal) decimal.Decimal {
	if d.LessThan(min) {
		return min
	}
	return d
}

// ClampRange limita d al intervalo [lo, hi].
func ClampRange(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// SafeDiv divide a/b y devuelve cero cuando el divisor es cero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}
