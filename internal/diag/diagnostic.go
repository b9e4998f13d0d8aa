// Package diag defines the diagnostic model shared by the IR decoder, the
// configuration loader, and the width reporter. Diagnostics are plain data:
// rendering belongs to the CLI, decisions about exit codes to the driver.
package diag

import "fmt"

// Diagnostic is one finding, positioned by path and 1-based line/column.
// Line zero means the finding is about the file as a whole.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Line     uint32
	Col      uint32
}

// String renders the stable single-line form used by golden files and the
// CLI short output.
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s %s %s %s", d.Severity, d.Code.ID(), d.Path, d.Message)
	}
	return fmt.Sprintf("%s %s %s:%d:%d %s", d.Severity, d.Code.ID(), d.Path, d.Line, d.Col, d.Message)
}
