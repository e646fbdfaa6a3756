package util

import (
	"github.com/dustin/go-humanize"
)

// FormatUSD renders an amount in whole dollars with thousand separators.
// Example: 1250 -> "$1,250".
func FormatUSD(amount int64) string {
	return "$" + humanize.Comma(amount)
}

// TruncateContent shortens a title for notifications and logs.
func TruncateContent(title string, maxLength int) string {
	if len(title) <= maxLength {
		return title
	}
	return title[:maxLength] + "..."
}
