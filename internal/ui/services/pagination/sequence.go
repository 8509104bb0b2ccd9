package pagination

import "strconv"

// PageMarker is one entry of a page button sequence: a 1-indexed page
// number or one of the two ellipsis markers.
type PageMarker int

// Ellipsis markers. They are distinct so a renderer can key them.
const (
	LeftEllipsis  PageMarker = -1
	RightEllipsis PageMarker = -2
)

const (
	maxUncompressed = 5
	windowRadius    = 1
)

// IsEllipsis reports whether the marker stands for skipped pages
func (m PageMarker) IsEllipsis() bool {
	return m == LeftEllipsis || m == RightEllipsis
}

func (m PageMarker) String() string {
	if m.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(int(m))
}

// Sequence returns the compressed list of page buttons for the current
// page. Up to five pages are listed verbatim. Beyond that the first and
// last pages are always present, with a window of three interior pages
// around the current one and an ellipsis on each side that skips pages.
func Sequence(currentPage, totalPages int) []PageMarker {
	if totalPages <= 0 {
		return []PageMarker{}
	}

	if totalPages <= maxUncompressed {
		seq := make([]PageMarker, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			seq = append(seq, PageMarker(p))
		}
		return seq
	}

	current := min(max(currentPage, 1), totalPages)

	start, end := current-windowRadius, current+windowRadius
	switch {
	case current <= 3:
		start, end = 2, 4
	case current >= totalPages-2:
		start, end = totalPages-3, totalPages-1
	}

	seq := []PageMarker{1}
	if start > 2 {
		seq = append(seq, LeftEllipsis)
	}
	for p := start; p <= end; p++ {
		seq = append(seq, PageMarker(p))
	}
	if end < totalPages-1 {
		seq = append(seq, RightEllipsis)
	}
	return append(seq, PageMarker(totalPages))
}
