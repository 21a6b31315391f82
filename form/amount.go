package form

import (
	"strconv"
	"strings"
	"unicode"
)

// parseAmount reads the leading integer of raw the way a number input
// is read by the page: surrounding whitespace is skipped, an optional sign
// is accepted and everything after the first non-digit is ignored, so
// "12.9" reads as 12. ok is false when raw has no leading digits or the
// value does not fit an int64.
func parseAmount(raw string) (amount int64, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	amount, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return amount, true
}
