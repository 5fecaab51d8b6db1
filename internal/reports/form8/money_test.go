package form8

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0.00",
		"100":        "100.00",
		"350.5":      "350.50",
		"1000":       "1 000.00",
		"1234567.89": "1 234 567.89",
		"999.999":    "1 000.00",
		"-2500.1":    "-2 500.10",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}
