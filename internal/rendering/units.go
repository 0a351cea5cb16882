package rendering

import "math"

// halfPoints converts a font size to the half-point units of w:sz.
func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// twentieths converts points to twentieths of a point (w:spacing before/after).
func twentieths(pt float64) int {
	return int(math.Round(pt * 20))
}

// twips converts inches to twips (w:ind, w:tab).
func twips(inches float64) int {
	return int(math.Round(inches * 1440))
}

// autoLine converts a line height multiplier to w:line with lineRule auto.
func autoLine(multiplier float64) int {
	return int(math.Round(multiplier * 240))
}
