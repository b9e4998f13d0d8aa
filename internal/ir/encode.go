package ir

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MakakWasTaken/biome/internal/doc"
)

// Encode serializes a document into an envelope in the given format.
// Source is recorded as the file the document was built from (may be empty).
func Encode(d *doc.Doc, source string, format Format) ([]byte, error) {
	env := Envelope{
		Schema: SchemaVersion,
		Source: source,
		Root:   FromDoc(d),
	}
	if format == FormatJSON {
		return json.Marshal(&env)
	}
	return msgpack.Marshal(&env)
}

// FromDoc converts a document into its wire representation.
func FromDoc(d *doc.Doc) *Node {
	if d == nil {
		return &Node{Kind: KindText}
	}
	switch d.Kind() {
	case doc.KindText:
		return &Node{Kind: KindText, Text: d.Text()}

	case doc.KindConcat:
		return &Node{Kind: KindConcat, Parts: fromDocs(d.Parts())}

	case doc.KindLine:
		return &Node{Kind: KindLine, Line: d.Line().String()}

	case doc.KindIndent:
		return &Node{Kind: KindIndent, Parts: []*Node{FromDoc(d.Child())}}

	case doc.KindGroup:
		return &Node{
			Kind:        KindGroup,
			Parts:       []*Node{FromDoc(d.Child())},
			Group:       uint32(d.ID()),
			ShouldBreak: d.ShouldBreak(),
		}

	case doc.KindConditionalGroup:
		return &Node{Kind: KindConditionalGroup, Parts: fromDocs(d.Parts())}

	case doc.KindFill:
		return &Node{
			Kind:       KindFill,
			Parts:      fromDocs(d.Parts()),
			Separators: fromDocs(d.Separators()),
		}

	case doc.KindLineSuffix:
		return &Node{Kind: KindLineSuffix, Parts: []*Node{FromDoc(d.Child())}}

	case doc.KindBreakParent:
		return &Node{Kind: KindBreakParent}

	case doc.KindIfBreak:
		return &Node{
			Kind:   KindIfBreak,
			Broken: FromDoc(d.BrokenBody()),
			Flat:   FromDoc(d.FlatBody()),
			Group:  uint32(d.ID()),
		}
	}
	panic(fmt.Sprintf("ir: unencodable document kind %d", d.Kind()))
}

func fromDocs(docs []*doc.Doc) []*Node {
	nodes := make([]*Node, len(docs))
	for i, d := range docs {
		nodes[i] = FromDoc(d)
	}
	return nodes
}
