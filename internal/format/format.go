// Package format renders amounts and datetimes for display.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var jp = message.NewPrinter(language.Japanese)

// FormatCurrency renders a yen amount with locale grouping, e.g. "￥1,234".
// JPY has no minor unit, so the amount is rounded to a whole number.
func FormatCurrency(amount float64) string {
	return jp.Sprintf("￥%v", number.Decimal(int64(math.Round(amount))))
}

// FormatDateTime renders t as "2006-01-02 15:04" in UTC, no local conversion.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
