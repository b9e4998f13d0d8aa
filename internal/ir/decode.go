package ir

import (
	"encoding/json"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MakakWasTaken/biome/internal/diag"
	"github.com/MakakWasTaken/biome/internal/doc"
)

// DetectFormat picks the serialization from a file name: ".doc.json" is
// JSON, everything else is msgpack.
func DetectFormat(path string) Format {
	if strings.HasSuffix(path, ".json") {
		return FormatJSON
	}
	return FormatMsgpack
}

// Decode parses an envelope and converts it into a printable document.
// Failures carry diag codes so the driver can report them uniformly.
func Decode(data []byte, format Format) (*doc.Doc, *Envelope, error) {
	var env Envelope
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &env)
	default:
		err = msgpack.Unmarshal(data, &env)
	}
	if err != nil {
		return nil, nil, decodeErr(diag.IRBadEnvelope, "cannot parse %s envelope: %v", format, err)
	}
	if env.Schema != SchemaVersion {
		return nil, nil, decodeErr(diag.IRUnknownSchema, "schema %d (this build reads %d)", env.Schema, SchemaVersion)
	}
	if env.Root == nil {
		return nil, nil, decodeErr(diag.IRBadEnvelope, "envelope has no root node")
	}
	d, err := convert(env.Root)
	if err != nil {
		return nil, nil, err
	}
	return d, &env, nil
}

func convert(n *Node) (*doc.Doc, error) {
	if n == nil {
		return doc.Nil(), nil
	}
	switch n.Kind {
	case KindText:
		if strings.ContainsRune(n.Text, '\n') {
			return nil, decodeErr(diag.IRTextWithNewline, "text node %q contains a newline", n.Text)
		}
		return doc.Text(n.Text), nil

	case KindConcat:
		parts, err := convertAll(n.Parts)
		if err != nil {
			return nil, err
		}
		return doc.Concat(parts...), nil

	case KindLine:
		switch n.Line {
		case "space", "":
			return doc.Line(), nil
		case "soft":
			return doc.SoftLine(), nil
		case "hard":
			return doc.HardLine(), nil
		case "literal":
			return doc.LiteralLine(), nil
		case "blank":
			return doc.BlankLine(), nil
		}
		return nil, decodeErr(diag.IRUnknownLineKind, "unknown line kind %q", n.Line)

	case KindIndent:
		child, err := convertChild(n.Parts)
		if err != nil {
			return nil, err
		}
		return doc.Indent(child), nil

	case KindGroup:
		child, err := convertChild(n.Parts)
		if err != nil {
			return nil, err
		}
		opts := doc.GroupOptions{ID: doc.GroupID(n.Group), ShouldBreak: n.ShouldBreak}
		return doc.GroupWith(opts, child), nil

	case KindConditionalGroup:
		if len(n.Parts) == 0 {
			return nil, decodeErr(diag.IREmptyConditional, "conditional group has no alternatives")
		}
		alts, err := convertAll(n.Parts)
		if err != nil {
			return nil, err
		}
		return doc.ConditionalGroup(alts...), nil

	case KindFill:
		if len(n.Parts) == 0 && len(n.Separators) > 0 {
			return nil, decodeErr(diag.IRMalformedFill, "fill has separators but no items")
		}
		if len(n.Parts) > 0 && len(n.Separators) != len(n.Parts)-1 {
			return nil, decodeErr(diag.IRMalformedFill,
				"fill has %d items and %d separators", len(n.Parts), len(n.Separators))
		}
		items, err := convertAll(n.Parts)
		if err != nil {
			return nil, err
		}
		seps, err := convertAll(n.Separators)
		if err != nil {
			return nil, err
		}
		return doc.Fill(items, seps), nil

	case KindLineSuffix:
		child, err := convertChild(n.Parts)
		if err != nil {
			return nil, err
		}
		return doc.LineSuffix(child), nil

	case KindBreakParent:
		return doc.BreakParent(), nil

	case KindIfBreak:
		broken, err := convert(n.Broken)
		if err != nil {
			return nil, err
		}
		flat, err := convert(n.Flat)
		if err != nil {
			return nil, err
		}
		return doc.IfBreakGroup(doc.GroupID(n.Group), broken, flat), nil
	}
	return nil, decodeErr(diag.IRUnknownNodeKind, "unknown node kind %q", n.Kind)
}

func convertAll(nodes []*Node) ([]*doc.Doc, error) {
	docs := make([]*doc.Doc, len(nodes))
	for i, n := range nodes {
		d, err := convert(n)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return docs, nil
}

// convertChild folds the parts of single-child nodes; builders are free to
// write one child or a list.
func convertChild(parts []*Node) (*doc.Doc, error) {
	docs, err := convertAll(parts)
	if err != nil {
		return nil, err
	}
	return doc.Concat(docs...), nil
}
