package notify

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
)

// NoExtraInfo is the fixed sentence used when the guest answered nothing.
const NoExtraInfo = "No additional information provided."

// FormatExtraInfo renders the free-form answers as one line per entry,
// in the order they were submitted.
func FormatExtraInfo(entries domain.ExtraInfo) string {
	if len(entries) == 0 {
		return NoExtraInfo
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, humanizeKey(entry.Key)+": "+renderValue(entry.Value))
	}
	return strings.Join(lines, "\n")
}

// humanizeKey turns a camelCase answer key into a label, e.g.
// "hasAllergies" becomes "Has Allergies". Already-spaced labels pass
// through unchanged.
func humanizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	runes := []rune(key)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && runes[i-1] != ' ' {
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		if strings.TrimSpace(v) == "" {
			return "None indicated"
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return "None indicated"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatAmount renders a price the way the site's front end does:
// whole numbers without decimals, fractions as given.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
