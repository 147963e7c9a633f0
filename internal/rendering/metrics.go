package rendering

import "math"

// timesRomanWidths are the Times-Roman advance widths for the printable ASCII
// range, in 1/1000 em, from the Adobe core font metrics.
var timesRomanWidths = [95]int{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278, // ' ' to '/'
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, // '0' to '9'
	278, 278, 564, 564, 564, 444, 921, // ':' to '@'
	722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, // 'A' to 'M'
	722, 722, 556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, // 'N' to 'Z'
	333, 278, 333, 469, 500, 333, // '[' to '`'
	444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, // 'a' to 'm'
	500, 500, 500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, // 'n' to 'z'
	480, 200, 480, 541, // '{' to '~'
}

// fallbackWidth is used for runes outside the table.
const fallbackWidth = 500

// TextWidth is the width of s set in Times-Roman at size points.
func TextWidth(s string, size float64) float64 {
	units := 0
	for _, r := range s {
		if r >= 32 && r <= 126 {
			units += timesRomanWidths[r-32]
			continue
		}
		units += fallbackWidth
	}
	return float64(units) * size / 1000
}

// Print layout: a Letter page with 36pt margins and a 6pt inset after the
// right column.
const (
	printContentWidth = 540.0
	printRightInset   = 6.0
	minRightShare     = 0.18
	maxRightShare     = 0.42
)

// RightColumnShare is the fraction of a two-column row given to the right
// cell: the width of its text plus 6pt, clamped to 18%..42% of the room left
// after indent.
func RightColumnShare(right string, size, indent float64) float64 {
	available := printContentWidth - indent - printRightInset
	if available < 1 {
		available = 1
	}
	w := TextWidth(right, size) + 6
	lo, hi := available*minRightShare, available*maxRightShare
	if w < lo {
		w = lo
	}
	if w > hi {
		w = hi
	}
	return w / available
}

// EstimateLines is the number of print lines s fills at size points in a
// column narrowed by indent. It ignores word breaks, so it can undercount.
func EstimateLines(s string, size, indent float64) int {
	if s == "" {
		return 0
	}
	available := printContentWidth - indent
	if available < 1 {
		available = 1
	}
	return int(math.Ceil(TextWidth(s, size) / available))
}
