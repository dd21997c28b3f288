package kernel

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places prices and totals are kept at.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// LineTotal is price times quantity, rounded.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return RoundMoney(price.Mul(decimal.NewFromInt(int64(quantity))))
}

// ApplyDiscount returns price reduced by percent, rounded to MoneyPlaces.
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	return RoundMoney(price.Mul(hundred.Sub(percent)).Div(hundred))
}
