package printer

import (
	"strings"
	"testing"

	"github.com/MakakWasTaken/biome/internal/doc"
)

func newState() *renderState {
	return &renderState{opt: Options{}.WithDefaults()}
}

func TestFitsSubtractsTextWidth(t *testing.T) {
	rs := newState()
	d := doc.Text("abcdef")
	if !rs.fits([]*doc.Doc{d}, 6, false) {
		t.Errorf("exact fit should pass")
	}
	if rs.fits([]*doc.Doc{d}, 5, false) {
		t.Errorf("one column short should fail")
	}
}

func TestFitsStopsAtHardBreak(t *testing.T) {
	rs := newState()
	// Everything after the hard line is on the next line and must not be
	// charged against this one.
	d := doc.Concat(doc.Text("ab"), doc.HardLine(), doc.Text(strings.Repeat("x", 200)))
	if !rs.fits([]*doc.Doc{d}, 2, false) {
		t.Errorf("scan must stop at the hard break")
	}
	if rs.fits([]*doc.Doc{d}, 1, false) {
		t.Errorf("prefix before the break still has to fit")
	}
}

func TestFitsMustBeFlatFailsOnForcedBreak(t *testing.T) {
	rs := newState()
	d := doc.Concat(doc.Text("ab"), doc.HardLine(), doc.Text("cd"))
	if rs.fits([]*doc.Doc{d}, 80, true) {
		t.Errorf("mustBeFlat must reject hard breaks")
	}
	grouped := doc.Concat(doc.Text("ab"), doc.Group(doc.Concat(doc.Text("cd"), doc.BreakParent())))
	if rs.fits([]*doc.Doc{grouped}, 80, true) {
		t.Errorf("mustBeFlat must reject groups that cannot flatten")
	}
}

func TestFitsFailsOnBreakParent(t *testing.T) {
	rs := newState()
	d := doc.Concat(doc.Text("a"), doc.BreakParent())
	if rs.fits([]*doc.Doc{d}, 80, false) {
		t.Errorf("break parent in the scanned region must fail fits")
	}
}

func TestFitsIgnoresLineSuffixWidth(t *testing.T) {
	rs := newState()
	d := doc.Concat(doc.Text("ab"), doc.LineSuffix(doc.Text(strings.Repeat("c", 100))))
	if !rs.fits([]*doc.Doc{d}, 2, false) {
		t.Errorf("line suffix content renders after this line and is free here")
	}
}

func TestFitsCountsSpaceLines(t *testing.T) {
	rs := newState()
	d := doc.Concat(doc.Text("ab"), doc.Line(), doc.Text("cd"))
	if !rs.fits([]*doc.Doc{d}, 5, false) {
		t.Errorf("flat line is one column")
	}
	if rs.fits([]*doc.Doc{d}, 4, false) {
		t.Errorf("five columns of content cannot fit in four")
	}
	soft := doc.Concat(doc.Text("ab"), doc.SoftLine(), doc.Text("cd"))
	if !rs.fits([]*doc.Doc{soft}, 4, false) {
		t.Errorf("flat soft line is zero columns")
	}
}

func TestFitsUsesRecordedGroupModeForIfBreak(t *testing.T) {
	rs := newState()
	id := doc.GroupID(1)
	d := doc.IfBreakGroup(id, doc.Text("xxxxxxxx"), doc.Text("y"))

	if !rs.fits([]*doc.Doc{d}, 1, false) {
		t.Errorf("unresolved group defaults to the flat body")
	}
	rs.recordMode(id, ModeBreak)
	if rs.fits([]*doc.Doc{d}, 1, false) {
		t.Errorf("broken group must charge the broken body width")
	}
}
