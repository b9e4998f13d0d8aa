package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Document IR decode problems.
	IRInfo             Code = 1000
	IRBadEnvelope      Code = 1001
	IRUnknownSchema    Code = 1002
	IRUnknownNodeKind  Code = 1003
	IRUnknownLineKind  Code = 1004
	IRMalformedFill    Code = 1005
	IREmptyConditional Code = 1006
	IRTextWithNewline  Code = 1007

	// Configuration problems.
	CfgInfo           Code = 2000
	CfgBadWidth       Code = 2001
	CfgBadIndentWidth Code = 2002
	CfgBadLineEnding  Code = 2003
	CfgUnreadable     Code = 2004

	// Layout diagnostics. Width overflow is expected and reportable, not an
	// error: some tokens simply cannot be broken.
	LayInfo          Code = 3000
	LayWidthExceeded Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown issue",
	IRInfo:             "Document IR information",
	IRBadEnvelope:      "Malformed document envelope",
	IRUnknownSchema:    "Unsupported document schema version",
	IRUnknownNodeKind:  "Unknown document node kind",
	IRUnknownLineKind:  "Unknown line kind",
	IRMalformedFill:    "Fill items and separators do not line up",
	IREmptyConditional: "Conditional group without alternatives",
	IRTextWithNewline:  "Text node contains a raw newline",
	CfgInfo:            "Configuration information",
	CfgBadWidth:        "Invalid max width",
	CfgBadIndentWidth:  "Invalid indent width",
	CfgBadLineEnding:   "Invalid line ending",
	CfgUnreadable:      "Configuration file is unreadable",
	LayInfo:            "Layout information",
	LayWidthExceeded:   "Line exceeds max width",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LAY%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
