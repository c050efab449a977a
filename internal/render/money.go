package render

import "github.com/shopspring/decimal"

// formatMoney renders d as "<sym> 1,234,567.89": fixed two decimals with
// thousands separators. Zero renders as "<sym> 0.00" so a zero cell is never
// mistaken for a missing one. Grouping is done on the decimal's exact string
// output; the value never passes through binary floating point.
func formatMoney(sym string, d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	intPart := s[:len(s)-3] // strip ".xx"
	frac := s[len(s)-3:]

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	out := string(grouped) + frac
	if neg {
		out = "-" + out
	}
	if sym == "" {
		return out
	}
	return sym + " " + out
}
