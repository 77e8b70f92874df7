package demesgraph

import "strconv"

func formatFloatPublic(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
