package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Price is a decimal amount without a currency attached.
type Price = decimal.Decimal

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// String formats the amount with two decimals, e.g. "USD 19.98".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency.String(), m.Amount.StringFixed(2))
}
