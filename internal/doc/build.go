package doc

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Shared leaves. Docs are immutable, so the same value can appear in any
// number of trees.
var (
	empty       = &Doc{kind: KindText}
	lineSpace   = &Doc{kind: KindLine, line: LineSpace}
	lineSoft    = &Doc{kind: KindLine, line: LineSoft}
	lineHard    = &Doc{kind: KindLine, line: LineHard, forces: true}
	lineLiteral = &Doc{kind: KindLine, line: LineLiteral, forces: true}
	lineBlank   = &Doc{kind: KindLine, line: LineBlank, forces: true}
	breakParent = &Doc{kind: KindBreakParent, forces: true}
)

// Nil returns an empty document that prints nothing.
func Nil() *Doc { return empty }

// Text returns a document printing s verbatim. s must not contain a newline;
// use LiteralLine to embed raw multi-line content.
func Text(s string) *Doc {
	if s == "" {
		return empty
	}
	if strings.ContainsRune(s, '\n') {
		panic(fmt.Sprintf("doc: Text contains newline: %q", s))
	}
	return &Doc{kind: KindText, text: s, width: runewidth.StringWidth(s)}
}

// Concat returns a document printing parts in order. Nil parts are dropped;
// a single surviving part is returned unwrapped.
func Concat(parts ...*Doc) *Doc {
	kept := make([]*Doc, 0, len(parts))
	forces := false
	for _, p := range parts {
		if p == nil || p == empty {
			continue
		}
		kept = append(kept, p)
		forces = forces || p.forces
	}
	switch len(kept) {
	case 0:
		return empty
	case 1:
		return kept[0]
	}
	return &Doc{kind: KindConcat, parts: kept, forces: forces}
}

// Line is a break that renders as one space when its group stays flat.
func Line() *Doc { return lineSpace }

// SoftLine is a break that renders as nothing when its group stays flat.
func SoftLine() *Doc { return lineSoft }

// HardLine always breaks and forces enclosing groups into broken mode.
func HardLine() *Doc { return lineHard }

// LiteralLine breaks without re-emitting indentation on the next line.
func LiteralLine() *Doc { return lineLiteral }

// BlankLine breaks and leaves one empty line behind it.
func BlankLine() *Doc { return lineBlank }

// BreakParent prints nothing but forces every enclosing group broken.
func BreakParent() *Doc { return breakParent }

// Indent prints d one indentation unit deeper. Nesting is additive and
// scoped to the subtree.
func Indent(d *Doc) *Doc {
	if d == nil || d == empty {
		return empty
	}
	return &Doc{kind: KindIndent, parts: []*Doc{d}, forces: d.forces}
}

// GroupOptions configures Group construction.
type GroupOptions struct {
	// ID makes the group's resolved mode queryable through IfBreak.
	ID GroupID
	// ShouldBreak builds the group pre-broken; no fits check is attempted.
	ShouldBreak bool
}

// Group resolves all line breaks inside d together: either everything stays
// flat or every break becomes a newline.
func Group(d *Doc) *Doc {
	return GroupWith(GroupOptions{}, d)
}

// GroupWith is Group with an explicit id or a forced-broken mode.
func GroupWith(opts GroupOptions, d *Doc) *Doc {
	if d == nil {
		d = empty
	}
	return &Doc{
		kind:        KindGroup,
		parts:       []*Doc{d},
		id:          opts.ID,
		shouldBreak: opts.ShouldBreak,
		forces:      d.forces || opts.ShouldBreak,
	}
}

// ConditionalGroup tries each alternative in order and prints the first one
// whose fully flat form fits. The last alternative is the fallback and is
// printed broken when nothing fits. Alternatives are expected to be ordered
// from most compact to most expanded.
func ConditionalGroup(alternatives ...*Doc) *Doc {
	if len(alternatives) == 0 {
		panic("doc: ConditionalGroup needs at least one alternative")
	}
	if len(alternatives) == 1 {
		return Group(alternatives[0])
	}
	parts := make([]*Doc, len(alternatives))
	forces := true
	for i, alt := range alternatives {
		if alt == nil {
			alt = empty
		}
		parts[i] = alt
		forces = forces && alt.forces
	}
	// The construct only forces enclosing breaks when every alternative does:
	// as long as one alternative can flatten, so can the whole group.
	return &Doc{kind: KindConditionalGroup, parts: parts, forces: forces}
}

// Fill lays out items with the separators between them, deciding each
// separator independently: a separator stays flat exactly when the item
// before it, the separator itself, and the item after it fit on the rest of
// the current line. len(separators) must be len(items)-1 (or zero for zero
// or one item).
func Fill(items []*Doc, separators []*Doc) *Doc {
	if len(items) == 0 {
		if len(separators) != 0 {
			panic("doc: Fill separators without items")
		}
		return empty
	}
	if len(separators) != len(items)-1 {
		panic(fmt.Sprintf("doc: Fill needs %d separators for %d items, got %d",
			len(items)-1, len(items), len(separators)))
	}
	parts := make([]*Doc, len(items))
	seps := make([]*Doc, len(separators))
	forces := false
	for i, it := range items {
		if it == nil {
			it = empty
		}
		parts[i] = it
		forces = forces || it.forces
	}
	for i, sep := range separators {
		if sep == nil {
			sep = empty
		}
		seps[i] = sep
		forces = forces || sep.forces
	}
	return &Doc{kind: KindFill, parts: parts, seps: seps, forces: forces}
}

// LineSuffix defers d to just before the next line break (or end of output).
// Used for trailing comments that must not push following tokens around.
func LineSuffix(d *Doc) *Doc {
	if d == nil {
		d = empty
	}
	// Deferred content renders after the current line, so it never forces the
	// line it is attached to.
	return &Doc{kind: KindLineSuffix, parts: []*Doc{d}}
}

// IfBreak prints broken when the enclosing group resolved to broken mode and
// flat otherwise. Either body may be nil.
func IfBreak(broken, flat *Doc) *Doc {
	return IfBreakGroup(0, broken, flat)
}

// IfBreakGroup is IfBreak keyed to a specific group id instead of the
// nearest enclosing group. The referenced group must have been printed
// before this node is reached.
func IfBreakGroup(id GroupID, broken, flat *Doc) *Doc {
	if broken == nil {
		broken = empty
	}
	if flat == nil {
		flat = empty
	}
	// The flat body is what renders when the surrounding context flattens, so
	// only its breaks propagate.
	return &Doc{kind: KindIfBreak, id: id, broken: broken, flat: flat, forces: flat.forces}
}

// Join concatenates parts with sep between consecutive elements.
func Join(sep *Doc, parts []*Doc) *Doc {
	if len(parts) == 0 {
		return empty
	}
	joined := make([]*Doc, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, p)
	}
	return Concat(joined...)
}
