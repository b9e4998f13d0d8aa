package doc

// Kind discriminates the node variants of a Doc.
type Kind uint8

const (
	// KindText is a run of printable characters without line breaks.
	KindText Kind = iota
	// KindConcat is an ordered sequence of children printed back to back.
	KindConcat
	// KindLine is a potential or forced line break (see LineKind).
	KindLine
	// KindIndent prints its child one indentation unit deeper.
	KindIndent
	// KindGroup resolves all line breaks in its child together.
	KindGroup
	// KindConditionalGroup tries alternatives in order, most compact first.
	KindConditionalGroup
	// KindFill lays out items with independent per-separator break decisions.
	KindFill
	// KindLineSuffix defers its child to just before the next line break.
	KindLineSuffix
	// KindBreakParent forces every enclosing group into broken mode.
	KindBreakParent
	// KindIfBreak picks content depending on a group's resolved mode.
	KindIfBreak
)

// LineKind selects how a KindLine node renders in flat and broken mode.
type LineKind uint8

const (
	// LineSpace renders as a single space when flat, a newline when broken.
	LineSpace LineKind = iota
	// LineSoft renders as nothing when flat, a newline when broken.
	LineSoft
	// LineHard always renders as a newline and forces enclosing groups broken.
	LineHard
	// LineLiteral is a hard break that does not re-emit indentation, used for
	// content that manages its own columns (template literals, raw strings).
	LineLiteral
	// LineBlank is a hard break that leaves one empty line behind it.
	LineBlank
)

func (k LineKind) String() string {
	switch k {
	case LineSpace:
		return "space"
	case LineSoft:
		return "soft"
	case LineHard:
		return "hard"
	case LineLiteral:
		return "literal"
	case LineBlank:
		return "blank"
	}
	return "unknown"
}

// Hard reports whether the line kind breaks unconditionally.
func (k LineKind) Hard() bool {
	return k == LineHard || k == LineLiteral || k == LineBlank
}

// GroupID identifies a group for later "did it break" queries.
// The zero value means the group is anonymous.
type GroupID uint32

// Doc is one node of an immutable printable document. All fields are set by
// the constructors in build.go and never change afterwards, so a Doc may be
// freely shared across trees and across concurrent printer runs.
type Doc struct {
	kind Kind

	// KindText
	text  string
	width int

	// KindLine
	line LineKind

	// Child nodes. parts holds the children of Concat, the alternatives of
	// ConditionalGroup, the items of Fill, and the single child of Indent,
	// Group, and LineSuffix. seps holds Fill separators. IfBreak keeps its
	// two bodies in broken/flat.
	parts  []*Doc
	seps   []*Doc
	broken *Doc
	flat   *Doc

	id          GroupID
	shouldBreak bool

	// forces is true when this subtree contains an unconditional break that
	// must propagate to enclosing groups.
	forces bool
}

// Kind returns the node variant.
func (d *Doc) Kind() Kind { return d.kind }

// Text returns the literal text of a KindText node.
func (d *Doc) Text() string { return d.text }

// TextWidth returns the display width of a KindText node, computed once at
// construction.
func (d *Doc) TextWidth() int { return d.width }

// Line returns the line kind of a KindLine node.
func (d *Doc) Line() LineKind { return d.line }

// Parts returns the ordered children: concat children, conditional-group
// alternatives, or fill items.
func (d *Doc) Parts() []*Doc { return d.parts }

// Child returns the single child of Indent, Group, and LineSuffix nodes.
func (d *Doc) Child() *Doc {
	if len(d.parts) == 0 {
		return empty
	}
	return d.parts[0]
}

// Separators returns the separator documents of a KindFill node.
func (d *Doc) Separators() []*Doc { return d.seps }

// BrokenBody returns the content an IfBreak prints when its group broke.
func (d *Doc) BrokenBody() *Doc { return d.broken }

// FlatBody returns the content an IfBreak prints when its group stayed flat.
func (d *Doc) FlatBody() *Doc { return d.flat }

// ID returns the group id of Group and IfBreak nodes (zero when anonymous).
func (d *Doc) ID() GroupID { return d.id }

// ShouldBreak reports whether a group was built pre-broken.
func (d *Doc) ShouldBreak() bool { return d.shouldBreak }

// ForcesBreak reports whether the subtree contains an unconditional break
// that propagates to enclosing groups.
func (d *Doc) ForcesBreak() bool { return d.forces }

// IDAllocator hands out sequential group ids for one document tree.
// Identifier zero is reserved for anonymous groups, so the first allocated
// id is 1.
type IDAllocator struct {
	next GroupID
}

// NewIDAllocator returns an allocator whose first id is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh group id.
func (a *IDAllocator) Next() GroupID {
	id := a.next
	a.next++
	return id
}

// Count returns how many ids have been allocated so far.
func (a *IDAllocator) Count() int {
	return int(a.next) - 1
}
