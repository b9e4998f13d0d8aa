// Package widthcheck post-scans rendered output for lines that exceed the
// configured width. Overflow is a soft diagnostic: correct layout can still
// produce over-wide lines when a single unbreakable token (a long string
// literal or identifier) is wider than the budget.
package widthcheck

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"github.com/MakakWasTaken/biome/internal/diag"
)

// Violation is one over-wide line of rendered output.
type Violation struct {
	// Line is 1-based.
	Line uint32
	// Width is the display width of the line in columns.
	Width int
	// Text is the offending line without its line ending.
	Text string
}

// Scan measures every line of output and returns the ones wider than
// maxWidth, in order. Line endings (LF or CRLF) are not counted.
func Scan(output []byte, maxWidth int) []Violation {
	if maxWidth <= 0 {
		return nil
	}
	var violations []Violation
	for i, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSuffix(line, "\r")
		width := runewidth.StringWidth(line)
		if width <= maxWidth {
			continue
		}
		num, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			break
		}
		violations = append(violations, Violation{Line: num, Width: width, Text: line})
	}
	return violations
}

// Report renders the "Lines exceeding max width" fixture section. It returns
// the empty string when there is nothing to report.
func Report(violations []Violation, maxWidth int) string {
	if len(violations) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Lines exceeding max width of %d characters\n", maxWidth)
	for _, v := range violations {
		fmt.Fprintf(&b, "%5d: %s\n", v.Line, v.Text)
	}
	return b.String()
}

// Collect turns violations into diagnostics on the bag, one per line.
func Collect(bag *diag.Bag, path string, violations []Violation, maxWidth int) {
	for _, v := range violations {
		if !bag.Add(diag.Diagnostic{
			Severity: diag.SevInfo,
			Code:     diag.LayWidthExceeded,
			Message:  fmt.Sprintf("line is %d columns (max %d)", v.Width, maxWidth),
			Path:     path,
			Line:     v.Line,
			Col:      1,
		}) {
			return
		}
	}
}
