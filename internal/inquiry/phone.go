package inquiry

import "strings"

// FormatPhone normalizes raw phone input toward the xxx-xxx-xxxx mask.
// Non-digit characters are stripped, the value is capped at ten digits, and
// hyphens are inserted progressively as digits arrive: one or two digits stay
// plain, three to five render as "xxx-x...", six or more as "xxx-xxx-xxxx".
// Re-applying the mask to its own output is a no-op.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[:10]
	}
	switch {
	case len(digits) >= 6:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	case len(digits) >= 3:
		return digits[:3] + "-" + digits[3:]
	}
	return digits
}
