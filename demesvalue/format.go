package demesvalue

import "strconv"

// formatFloat renders a float64 using the shortest round-trippable form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
