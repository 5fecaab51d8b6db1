package form8

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// moneyFormat - пробел между тысячами, точка, два знака.
const moneyFormat = "# ###.##"

// FormatMoney печатает сумму как "1 234 567.89".
func FormatMoney(d decimal.Decimal) string {
	return humanize.FormatFloat(moneyFormat, d.Round(2).InexactFloat64())
}
