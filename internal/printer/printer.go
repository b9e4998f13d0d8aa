package printer

import (
	"errors"

	"github.com/MakakWasTaken/biome/internal/doc"
)

// Mode is the resolved rendering mode of a document region.
type Mode uint8

const (
	// ModeBreak renders line nodes as actual newlines.
	ModeBreak Mode = iota
	// ModeFlat renders line nodes as a space or nothing.
	ModeFlat
)

func (m Mode) String() string {
	if m == ModeFlat {
		return "flat"
	}
	return "break"
}

// Result is the output of one layout run.
type Result struct {
	// Output is the rendered text with the configured line ending.
	Output []byte

	groupModes []Mode
	groupKnown []bool
}

// Broke reports whether the group with the given id resolved to broken mode.
// Unknown or anonymous ids report false.
func (r *Result) Broke(id doc.GroupID) bool {
	m, ok := r.Mode(id)
	return ok && m == ModeBreak
}

// Mode returns the resolved mode of an identified group, if the group was
// reached during layout.
func (r *Result) Mode(id doc.GroupID) (Mode, bool) {
	if id == 0 || int(id) >= len(r.groupKnown) || !r.groupKnown[id] {
		return ModeBreak, false
	}
	return r.groupModes[id], true
}

// command is one unit of pending work: a document fragment, the indentation
// depth it renders at, and the mode it renders in. fill is the progress
// index when d is a fill list, so advancing through items never rebuilds the
// document.
type command struct {
	d      *doc.Doc
	indent int
	mode   Mode
	fill   int
}

type renderState struct {
	opt      Options
	out      []byte
	pos      int
	stack    []command
	suffixes []command

	groupModes []Mode
	groupKnown []bool
}

// Print renders d within the width budget of opts. It is deterministic and
// never fails on a well-formed document; the only errors are precondition
// violations (nil document, invalid options). The returned Result owns its
// output; d is only read and may be shared with concurrent Print calls.
func Print(d *doc.Doc, opts Options) (*Result, error) {
	if d == nil {
		return nil, errors.New("printer: nil document")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	rs := &renderState{opt: opts}
	rs.stack = append(rs.stack, command{d: d, mode: ModeBreak})

	for {
		if len(rs.stack) == 0 {
			if len(rs.suffixes) == 0 {
				break
			}
			rs.flushSuffixes()
			continue
		}
		c := rs.pop()

		switch c.d.Kind() {
		case doc.KindText:
			rs.text(c.d.Text(), c.d.TextWidth())

		case doc.KindConcat:
			rs.pushParts(c.d.Parts(), c.indent, c.mode)

		case doc.KindIndent:
			rs.push(command{d: c.d.Child(), indent: c.indent + 1, mode: c.mode})

		case doc.KindLine:
			rs.printLine(c)

		case doc.KindGroup:
			rs.printGroup(c)

		case doc.KindConditionalGroup:
			rs.printConditionalGroup(c)

		case doc.KindFill:
			rs.printFill(c)

		case doc.KindLineSuffix:
			rs.suffixes = append(rs.suffixes, command{d: c.d.Child(), indent: c.indent, mode: c.mode})

		case doc.KindBreakParent:
			// Already accounted for through the forced-break flags.

		case doc.KindIfBreak:
			rs.printIfBreak(c)
		}
	}

	return &Result{
		Output:     rs.out,
		groupModes: rs.groupModes,
		groupKnown: rs.groupKnown,
	}, nil
}

func (rs *renderState) pop() command {
	c := rs.stack[len(rs.stack)-1]
	rs.stack = rs.stack[:len(rs.stack)-1]
	return c
}

func (rs *renderState) push(c command) {
	rs.stack = append(rs.stack, c)
}

// pushParts schedules parts in order. The work list is a stack, so they go
// on in reverse.
func (rs *renderState) pushParts(parts []*doc.Doc, indent int, mode Mode) {
	for i := len(parts) - 1; i >= 0; i-- {
		rs.push(command{d: parts[i], indent: indent, mode: mode})
	}
}

func (rs *renderState) text(s string, width int) {
	if s == "" {
		return
	}
	rs.out = append(rs.out, s...)
	rs.pos += width
}

func (rs *renderState) printLine(c command) {
	kind := c.d.Line()
	if c.mode == ModeFlat && !kind.Hard() {
		if kind == doc.LineSpace {
			rs.text(" ", 1)
		}
		return
	}

	// Pending line suffixes render on this line, before the break. Re-queue
	// the break behind them.
	if len(rs.suffixes) > 0 {
		rs.push(c)
		rs.flushSuffixes()
		return
	}

	rs.newline(c.indent, kind)
}

func (rs *renderState) newline(indent int, kind doc.LineKind) {
	rs.trimTrailing()
	rs.out = append(rs.out, rs.opt.LineEnding.terminator()...)
	if kind == doc.LineBlank {
		rs.out = append(rs.out, rs.opt.LineEnding.terminator()...)
	}
	if kind == doc.LineLiteral {
		// Literal breaks leave column zero; the content manages its own
		// layout from here.
		rs.pos = 0
		return
	}
	if rs.opt.UseTabs {
		for i := 0; i < indent; i++ {
			rs.out = append(rs.out, '\t')
		}
	} else {
		for i := 0; i < indent*rs.opt.IndentWidth; i++ {
			rs.out = append(rs.out, ' ')
		}
	}
	rs.pos = indent * rs.opt.IndentWidth
}

// trimTrailing drops trailing spaces and tabs from the current line so that
// broken soft lines never leave dangling whitespace.
func (rs *renderState) trimTrailing() {
	n := len(rs.out)
	for n > 0 && (rs.out[n-1] == ' ' || rs.out[n-1] == '\t') {
		n--
	}
	rs.out = rs.out[:n]
}

func (rs *renderState) flushSuffixes() {
	for i := len(rs.suffixes) - 1; i >= 0; i-- {
		rs.push(rs.suffixes[i])
	}
	rs.suffixes = rs.suffixes[:0]
}

func (rs *renderState) printGroup(c command) {
	child := c.d.Child()
	id := c.d.ID()

	switch {
	case c.d.ShouldBreak() || c.d.ForcesBreak():
		rs.recordMode(id, ModeBreak)
		rs.push(command{d: child, indent: c.indent, mode: ModeBreak})

	case c.mode == ModeFlat:
		// An enclosing fits check already proved this region fits.
		rs.recordMode(id, ModeFlat)
		rs.push(command{d: child, indent: c.indent, mode: ModeFlat})

	default:
		mode := ModeBreak
		if rs.fits([]*doc.Doc{child}, rs.opt.MaxWidth-rs.pos, false) {
			mode = ModeFlat
		}
		rs.recordMode(id, mode)
		rs.push(command{d: child, indent: c.indent, mode: mode})
	}
}

// printConditionalGroup tries the alternatives in order and prints the first
// whose fully flat form fits. The last alternative is the unconditional
// fallback and renders broken.
func (rs *renderState) printConditionalGroup(c command) {
	alts := c.d.Parts()

	if c.mode == ModeFlat {
		rs.push(command{d: alts[0], indent: c.indent, mode: ModeFlat})
		return
	}

	rem := rs.opt.MaxWidth - rs.pos
	for _, alt := range alts[:len(alts)-1] {
		if alt.ForcesBreak() {
			continue
		}
		if rs.fits([]*doc.Doc{alt}, rem, true) {
			rs.push(command{d: alt, indent: c.indent, mode: ModeFlat})
			return
		}
	}
	rs.push(command{d: alts[len(alts)-1], indent: c.indent, mode: ModeBreak})
}

// printFill advances a fill list by one item. Each separator's decision
// looks only at the item before it, the separator itself, and the item
// after it, so the whole list costs O(n) fits scans and earlier decisions
// are never revisited.
func (rs *renderState) printFill(c command) {
	items := c.d.Parts()
	seps := c.d.Separators()
	i := c.fill
	if i >= len(items) {
		return
	}

	rem := rs.opt.MaxWidth - rs.pos
	content := items[i]
	contentFits := rs.fits([]*doc.Doc{content}, rem, false)

	if i == len(items)-1 {
		rs.push(command{d: content, indent: c.indent, mode: fitMode(contentFits)})
		return
	}

	sep := seps[i]
	pairFits := rs.fits([]*doc.Doc{content, sep, items[i+1]}, rem, false)

	rest := c
	rest.fill = i + 1
	rs.push(rest)

	switch {
	case pairFits:
		rs.push(command{d: sep, indent: c.indent, mode: ModeFlat})
		rs.push(command{d: content, indent: c.indent, mode: ModeFlat})
	case contentFits:
		rs.push(command{d: sep, indent: c.indent, mode: ModeBreak})
		rs.push(command{d: content, indent: c.indent, mode: ModeFlat})
	default:
		rs.push(command{d: sep, indent: c.indent, mode: ModeBreak})
		rs.push(command{d: content, indent: c.indent, mode: ModeBreak})
	}
}

func (rs *renderState) printIfBreak(c command) {
	mode := c.mode
	if id := c.d.ID(); id != 0 {
		if recorded, ok := rs.groupMode(id); ok {
			mode = recorded
		}
	}
	body := c.d.FlatBody()
	if mode == ModeBreak {
		body = c.d.BrokenBody()
	}
	rs.push(command{d: body, indent: c.indent, mode: c.mode})
}

func fitMode(fits bool) Mode {
	if fits {
		return ModeFlat
	}
	return ModeBreak
}

func (rs *renderState) recordMode(id doc.GroupID, mode Mode) {
	if id == 0 {
		return
	}
	if int(id) >= len(rs.groupKnown) {
		grown := make([]Mode, int(id)+1)
		copy(grown, rs.groupModes)
		rs.groupModes = grown
		grownKnown := make([]bool, int(id)+1)
		copy(grownKnown, rs.groupKnown)
		rs.groupKnown = grownKnown
	}
	rs.groupModes[id] = mode
	rs.groupKnown[id] = true
}

func (rs *renderState) groupMode(id doc.GroupID) (Mode, bool) {
	if id == 0 || int(id) >= len(rs.groupKnown) || !rs.groupKnown[id] {
		return ModeBreak, false
	}
	return rs.groupModes[id], true
}
