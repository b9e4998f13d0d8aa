// Package snapshot renders comparative-testing fixtures: the original
// source, a unified diff of our output against a reference formatter, the
// final output, and the width-violation report. The harness around it
// (collecting inputs, invoking a reference tool) lives in the CLI.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/MakakWasTaken/biome/internal/textdiff"
	"github.com/MakakWasTaken/biome/internal/widthcheck"
)

// Input is everything one snapshot needs.
type Input struct {
	// Source is the original input file content.
	Source []byte
	// Output is this formatter's rendering.
	Output []byte
	// Reference is the reference formatter's rendering. Nil means no
	// reference was available, which omits the diff section.
	Reference []byte
	// MaxWidth is the width budget the output was laid out under.
	MaxWidth int
}

// Render produces the snapshot text.
func Render(in Input) (string, error) {
	var b strings.Builder

	section(&b, "Input", string(in.Source))

	if in.Reference != nil {
		diff, err := textdiff.Unified("output", "reference", string(in.Output), string(in.Reference))
		if err != nil {
			return "", fmt.Errorf("snapshot: diff failed: %w", err)
		}
		if diff == "" {
			diff = "(identical to reference)\n"
		}
		section(&b, "Diff", diff)
	}

	section(&b, "Output", string(in.Output))

	violations := widthcheck.Scan(in.Output, in.MaxWidth)
	if len(violations) > 0 {
		b.WriteString("# ")
		b.WriteString(widthcheck.Report(violations, in.MaxWidth))
	}

	return b.String(), nil
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "# %s\n", title)
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
