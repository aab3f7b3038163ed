package anim

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders counter values for one locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

var defaultFormatter = NewFormatter(language.English)

// Format renders v with fixed decimals when decimals > 0, otherwise as a rounded integer with
// thousands separators.
func (f Formatter) Format(v float64, decimals int, prefix, suffix string) string {
	if decimals > 0 {
		return prefix + strconv.FormatFloat(v, 'f', decimals, 64) + suffix
	}
	rounded := int64(math.Round(v))
	return prefix + f.printer.Sprintf("%d", rounded) + suffix
}

func Format(v float64, decimals int, prefix, suffix string) string {
	return defaultFormatter.Format(v, decimals, prefix, suffix)
}
