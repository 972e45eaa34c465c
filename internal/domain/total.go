package domain

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// GrandTotal sums price*quantity and rounds the result to 2 decimal places.
// Negative prices or quantities are summed as they are.
func GrandTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2)
}

// GrandTotalJSON computes the grand total of a JSON array of loosely typed
// line items. Missing or non-numeric price and quantity fields count as 0,
// and anything that is not a JSON array totals 0.
func GrandTotalJSON(raw []byte) decimal.Decimal {
	if !gjson.ValidBytes(raw) {
		return decimal.Zero
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return decimal.Zero
	}

	total := decimal.Zero
	parsed.ForEach(func(_, item gjson.Result) bool {
		price := coercePrice(item.Get("price"))
		quantity := coerceQuantity(item.Get("quantity"))
		total = total.Add(price.Mul(decimal.NewFromInt(quantity)))
		return true
	})

	return total.Round(2)
}

// ComputeGrandTotal accepts typed carts as well as loosely typed input:
// raw JSON bytes or any value that marshals to a JSON array of objects with
// price and quantity fields. A Go string is a scalar, not raw JSON, and
// totals 0 like any other non-sequence.
func ComputeGrandTotal(items any) decimal.Decimal {
	switch v := items.(type) {
	case nil:
		return decimal.Zero
	case Cart:
		return GrandTotal(v.Items)
	case *Cart:
		if v == nil {
			return decimal.Zero
		}
		return GrandTotal(v.Items)
	case []CartItem:
		return GrandTotal(v)
	case []*CartItem:
		items := make([]CartItem, 0, len(v))
		for _, item := range v {
			if item != nil {
				items = append(items, *item)
			}
		}
		return GrandTotal(items)
	case json.RawMessage:
		return GrandTotalJSON(v)
	case []byte:
		return GrandTotalJSON(v)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return decimal.Zero
	}

	return GrandTotalJSON(raw)
}

// ParsePrice reads the leading decimal number of s, ignoring surrounding
// whitespace and trailing garbage. Input without a leading number is 0.
func ParsePrice(s string) decimal.Decimal {
	match := floatPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return decimal.Zero
	}

	match = strings.TrimPrefix(match, "+")
	switch {
	case strings.HasPrefix(match, "."):
		match = "0" + match
	case strings.HasPrefix(match, "-."):
		match = "-0" + match[1:]
	}

	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ParseQuantity reads the leading integer of s. Input without a leading
// integer, or one that overflows int64, is 0.
func ParseQuantity(s string) int64 {
	match := intPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}

	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// PriceFromJSON coerces a single JSON value (number or numeric string) to a price.
func PriceFromJSON(raw []byte) decimal.Decimal {
	return coercePrice(gjson.ParseBytes(raw))
}

// QuantityFromJSON coerces a single JSON value (number or numeric string) to a quantity.
func QuantityFromJSON(raw []byte) int64 {
	return coerceQuantity(gjson.ParseBytes(raw))
}

func coercePrice(r gjson.Result) decimal.Decimal {
	switch r.Type {
	case gjson.Number:
		if d, err := decimal.NewFromString(r.Raw); err == nil {
			return d
		}
		return decimal.NewFromFloat(r.Num)
	case gjson.String:
		return ParsePrice(r.Str)
	default:
		return decimal.Zero
	}
}

func coerceQuantity(r gjson.Result) int64 {
	switch r.Type {
	case gjson.Number:
		// truncates toward zero; out of int64 range is 0, as in ParseQuantity
		n := math.Trunc(r.Num)
		if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0
		}
		return int64(n)
	case gjson.String:
		return ParseQuantity(r.Str)
	default:
		return 0
	}
}
