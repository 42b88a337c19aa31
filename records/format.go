package records

import (
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// NameWidth is the display width names are padded to.
const NameWidth = 24

var setupGraphemes sync.Once

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

// pad appends spaces to s until it fills width terminal cells. Strings wider
// than width are returned unchanged.
func pad(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Money formats an amount in Brazilian reais, e.g. "R$ 1.234,56".
func Money(amount float64) string {
	if amount < 0 {
		return "-R$ " + humanize.FormatFloat("#.###,##", -amount)
	}
	return "R$ " + humanize.FormatFloat("#.###,##", amount)
}

// units formats a stock count with thousands separators, e.g. "1.200 units".
func units(n int) string {
	s := humanize.FormatInteger("#.###,", n)
	if n == 1 {
		return s + " unit"
	}
	return s + " units"
}
