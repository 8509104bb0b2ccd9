package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"dispatchdash/internal/ui/services/pagination"
)

// PagerSpan is the screen range of one clickable pager button. Page is
// the page it leads to.
type PagerSpan struct {
	Page  int
	Start int
	End   int
}

type pagerToken struct {
	text    string
	page    int // 0 for tokens that lead nowhere
	current bool
}

// PagerRow is the screen line of the pager bar for a viewport height
func PagerRow(viewportHeight int) int {
	return BodyRow + max(viewportHeight, 1) + 1
}

func pagerTokens(meta pagination.Meta, pages []pagination.PageMarker) []pagerToken {
	tokens := make([]pagerToken, 0, len(pages)+2)

	prev := pagerToken{text: "‹"}
	if meta.HasPrevious {
		prev.page = meta.CurrentPage - 1
	}
	tokens = append(tokens, prev)

	for _, p := range pages {
		if p.IsEllipsis() {
			tokens = append(tokens, pagerToken{text: p.String()})
			continue
		}
		tokens = append(tokens, pagerToken{
			text:    fmt.Sprintf(" %d ", int(p)),
			page:    int(p),
			current: int(p) == meta.CurrentPage,
		})
	}

	next := pagerToken{text: "›"}
	if meta.HasNext {
		next.page = meta.CurrentPage + 1
	}
	return append(tokens, next)
}

// PagerSpans lays out the pager buttons from the left margin
func PagerSpans(meta pagination.Meta, pages []pagination.PageMarker) []PagerSpan {
	var spans []PagerSpan
	x := LeftMargin
	for _, t := range pagerTokens(meta, pages) {
		w := ansi.StringWidth(t.text)
		if t.page > 0 {
			spans = append(spans, PagerSpan{Page: t.page, Start: x, End: x + w})
		}
		x += w + 1
	}
	return spans
}

// HitPager returns the page of the pager button under (x, y)
func HitPager(spans []PagerSpan, row, x, y int) (int, bool) {
	if y != row {
		return 0, false
	}
	for _, s := range spans {
		if x >= s.Start && x < s.End {
			return s.Page, true
		}
	}
	return 0, false
}

// RenderPager renders the page buttons and the range summary
func (r *Renderer) RenderPager(meta pagination.Meta, pages []pagination.PageMarker) string {
	tokens := pagerTokens(meta, pages)
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		switch {
		case t.current:
			parts[i] = r.styles.CurrentPage.Render(t.text)
		case t.page == 0:
			parts[i] = r.styles.Dim.Render(t.text)
		default:
			parts[i] = r.styles.Page.Render(t.text)
		}
	}

	summary := "no records"
	if meta.TotalItems > 0 {
		summary = fmt.Sprintf("%d–%d of %d", meta.StartIndex+1, meta.EndIndex, meta.TotalItems)
	}
	summary = fmt.Sprintf("   %s · %d per page", summary, meta.PageSize)

	return strings.Join(parts, " ") + r.styles.Status.Render(summary)
}
