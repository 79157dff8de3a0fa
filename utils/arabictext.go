// Package utils: presentation helpers for the Arabic (RTL) report output.
package utils

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// easternDigits maps Western Arabic numerals (0-9) to Eastern Arabic numerals (٠-٩).
var easternDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// ToEasternArabicNumerals converts Western Arabic numerals (0-9) to Eastern
// Arabic numerals (٠-٩) in a string.
func ToEasternArabicNumerals(text string) string {
	return easternDigits.Replace(text)
}

// DisplayRTL reorders a logical-order string into visual order for terminals
// and sinks that do not run the bidirectional algorithm themselves. Left-to-
// right runs pass through; right-to-left runs are reversed. On any bidi
// resolution error the input is returned unchanged.
func DisplayRTL(text string) string {
	if text == "" {
		return text
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return text
	}
	ordering, err := p.Order()
	if err != nil {
		return text
	}

	var b strings.Builder
	// Visual order for an RTL paragraph lays runs out right to left.
	for i := ordering.NumRuns() - 1; i >= 0; i-- {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(bidi.ReverseString(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

// ShapeCell prepares one table cell for display: numerals converted to the
// Eastern Arabic script, then the whole cell reordered visually.
func ShapeCell(text string) string {
	return DisplayRTL(ToEasternArabicNumerals(text))
}
