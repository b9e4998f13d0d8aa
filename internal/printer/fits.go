package printer

import "github.com/MakakWasTaken/biome/internal/doc"

type fitsEntry struct {
	d    *doc.Doc
	mode Mode
}

// fits reports whether parts can render on the remaining width of the
// current line without breaking any internal group. The scan is virtual (no
// output is produced) and bounded: it stops at the first line boundary, so
// the cost is proportional to the prefix actually inspected.
//
// With mustBeFlat set, any unconditional break in the scanned region fails
// the check instead of ending the line; conditional groups use this to rule
// out alternatives that cannot flatten completely.
func (rs *renderState) fits(parts []*doc.Doc, width int, mustBeFlat bool) bool {
	stack := make([]fitsEntry, 0, len(parts)+8)
	for i := len(parts) - 1; i >= 0; i-- {
		stack = append(stack, fitsEntry{d: parts[i], mode: ModeFlat})
	}

	for len(stack) > 0 {
		if width < 0 {
			return false
		}
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := e.d

		switch d.Kind() {
		case doc.KindText:
			width -= d.TextWidth()

		case doc.KindConcat:
			for i := len(d.Parts()) - 1; i >= 0; i-- {
				stack = append(stack, fitsEntry{d: d.Parts()[i], mode: e.mode})
			}

		case doc.KindIndent:
			stack = append(stack, fitsEntry{d: d.Child(), mode: e.mode})

		case doc.KindLine:
			kind := d.Line()
			if e.mode == ModeBreak || kind.Hard() {
				if mustBeFlat && kind.Hard() {
					return false
				}
				// The line ends before the budget runs out.
				return width >= 0
			}
			if kind == doc.LineSpace {
				width--
			}

		case doc.KindGroup:
			forced := d.ShouldBreak() || d.ForcesBreak()
			if mustBeFlat && forced {
				return false
			}
			mode := e.mode
			if forced {
				mode = ModeBreak
			}
			stack = append(stack, fitsEntry{d: d.Child(), mode: mode})

		case doc.KindConditionalGroup:
			if mustBeFlat && d.ForcesBreak() {
				return false
			}
			// Scan the most compact alternative; the printer will expand
			// later if it has to.
			stack = append(stack, fitsEntry{d: d.Parts()[0], mode: e.mode})

		case doc.KindFill:
			if mustBeFlat && d.ForcesBreak() {
				return false
			}
			items := d.Parts()
			seps := d.Separators()
			for i := len(items) - 1; i >= 0; i-- {
				stack = append(stack, fitsEntry{d: items[i], mode: e.mode})
				if i > 0 {
					stack = append(stack, fitsEntry{d: seps[i-1], mode: e.mode})
				}
			}

		case doc.KindLineSuffix:
			// Renders after this line; contributes nothing to it.

		case doc.KindBreakParent:
			return false

		case doc.KindIfBreak:
			mode := e.mode
			if id := d.ID(); id != 0 {
				if recorded, ok := rs.groupMode(id); ok {
					mode = recorded
				}
			}
			body := d.FlatBody()
			if mode == ModeBreak {
				body = d.BrokenBody()
			}
			stack = append(stack, fitsEntry{d: body, mode: e.mode})
		}
	}

	return width >= 0
}
