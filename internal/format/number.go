// Package format renders exchange numeric strings for display.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the fixed number of fractional digits shown for every value.
const Places = 4

func parse(v string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// fixed rounds the binary float nearest to v, so ties follow the float value
// and a negative zero keeps its sign.
func fixed(v string, d decimal.Decimal) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		f = d.InexactFloat64()
	}
	return strconv.FormatFloat(f, 'f', Places, 64)
}

// Number parses v as a float and prints it rounded to four fractional
// digits. Values that do not parse are returned unchanged.
func Number(v string) string {
	d, ok := parse(v)
	if !ok {
		return v
	}
	return fixed(v, d)
}

// PnL renders "<upl> (<ratio>%)" with both parts at four places. When either
// operand does not parse, both are shown raw in the same template.
func PnL(upl, ratio string) string {
	u, okU := parse(upl)
	r, okR := parse(ratio)
	if !okU || !okR {
		return upl + " (" + ratio + "%)"
	}
	return fixed(upl, u) + " (" + fixed(ratio, r) + "%)"
}

// Float parses v for chart series; empty input is zero.
func Float(v string) (float64, bool) {
	if strings.TrimSpace(v) == "" {
		return 0, true
	}
	d, ok := parse(v)
	if !ok {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}
