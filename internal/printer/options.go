package printer

import (
	"errors"
	"fmt"
)

// LineEnding selects the newline sequence of the rendered output.
type LineEnding uint8

const (
	// LineEndingLF terminates lines with "\n".
	LineEndingLF LineEnding = iota
	// LineEndingCRLF terminates lines with "\r\n".
	LineEndingCRLF
)

func (e LineEnding) String() string {
	if e == LineEndingCRLF {
		return "crlf"
	}
	return "lf"
}

func (e LineEnding) terminator() string {
	if e == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseLineEnding parses "lf" or "crlf".
func ParseLineEnding(s string) (LineEnding, error) {
	switch s {
	case "lf", "":
		return LineEndingLF, nil
	case "crlf":
		return LineEndingCRLF, nil
	}
	return LineEndingLF, fmt.Errorf("unknown line ending %q (must be lf or crlf)", s)
}

// Options configures one layout run. The zero value means "use defaults".
type Options struct {
	// MaxWidth is the line width budget in display columns. 0 means 80.
	MaxWidth int
	// IndentWidth is the number of columns per indentation unit. 0 means 2.
	// When UseTabs is set it is the displayed width of one tab.
	IndentWidth int
	// UseTabs emits one tab per indentation unit instead of spaces.
	UseTabs bool
	// LineEnding selects "\n" or "\r\n".
	LineEnding LineEnding
}

// WithDefaults resolves zero values to the documented defaults.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

// Validate rejects configurations layout cannot run under. Negative values
// are precondition violations; zero values mean "default" and are fine.
func (o Options) Validate() error {
	if o.MaxWidth < 0 {
		return errors.New("printer: negative max width")
	}
	if o.IndentWidth < 0 {
		return errors.New("printer: negative indent width")
	}
	if o.LineEnding > LineEndingCRLF {
		return fmt.Errorf("printer: unknown line ending %d", o.LineEnding)
	}
	return nil
}
