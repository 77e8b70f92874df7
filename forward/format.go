package forward

import "strconv"

// formatFloatPublic renders a float64 using the shortest round-trippable form.
func formatFloatPublic(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
