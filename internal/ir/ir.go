// Package ir is the wire format for printable documents: the boundary
// between out-of-process document builders (parsers, per-node formatting
// logic) and the layout engine. Builders emit a versioned envelope as
// msgpack or JSON; this package decodes it into internal/doc values and can
// encode documents back for caching and round-trip checks.
package ir

import (
	"fmt"

	"github.com/MakakWasTaken/biome/internal/diag"
)

// SchemaVersion is the current envelope schema. Increment when the node
// layout changes incompatibly.
const SchemaVersion uint16 = 1

// Format identifies the serialization of an IR file.
type Format uint8

const (
	// FormatMsgpack is the compact default (".doc" files).
	FormatMsgpack Format = iota
	// FormatJSON is the debuggable alternative (".doc.json" files).
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "msgpack"
}

// Envelope wraps one document tree with its schema version and the path of
// the source file the builder produced it from.
type Envelope struct {
	Schema uint16 `msgpack:"schema" json:"schema"`
	Source string `msgpack:"source,omitempty" json:"source,omitempty"`
	Root   *Node  `msgpack:"root" json:"root"`
}

// Node is the serialized form of one document node. Which fields are
// meaningful depends on Kind; unused fields stay at their zero value and are
// omitted on the wire.
type Node struct {
	Kind string `msgpack:"kind" json:"kind"`

	// kind "text"
	Text string `msgpack:"text,omitempty" json:"text,omitempty"`

	// kind "line": one of "space", "soft", "hard", "literal", "blank"
	Line string `msgpack:"line,omitempty" json:"line,omitempty"`

	// Children: concat parts, the single child of indent/group/line_suffix,
	// conditional-group alternatives, or fill items.
	Parts []*Node `msgpack:"parts,omitempty" json:"parts,omitempty"`

	// kind "fill"
	Separators []*Node `msgpack:"separators,omitempty" json:"separators,omitempty"`

	// kind "if_break"
	Broken *Node `msgpack:"broken,omitempty" json:"broken,omitempty"`
	Flat   *Node `msgpack:"flat,omitempty" json:"flat,omitempty"`

	// kinds "group" and "if_break"
	Group       uint32 `msgpack:"group,omitempty" json:"group,omitempty"`
	ShouldBreak bool   `msgpack:"should_break,omitempty" json:"should_break,omitempty"`
}

// Node kind names on the wire.
const (
	KindText             = "text"
	KindConcat           = "concat"
	KindLine             = "line"
	KindIndent           = "indent"
	KindGroup            = "group"
	KindConditionalGroup = "conditional_group"
	KindFill             = "fill"
	KindLineSuffix       = "line_suffix"
	KindBreakParent      = "break_parent"
	KindIfBreak          = "if_break"
)

// Error is a decode failure with a stable diagnostic code.
type Error struct {
	Code diag.Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ir: %s", e.Msg)
}

func decodeErr(code diag.Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}
