package doc

import "testing"

func TestTextRejectsNewlines(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Text with newline must panic")
		}
	}()
	Text("a\nb")
}

func TestTextWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"héllo", 5},
	}
	for _, tc := range cases {
		d := Text(tc.in)
		if d.TextWidth() != tc.width {
			t.Errorf("Text(%q).TextWidth() = %d, want %d", tc.in, d.TextWidth(), tc.width)
		}
	}
}

func TestConcatFlattening(t *testing.T) {
	if Concat() != Nil() {
		t.Errorf("empty Concat should be Nil")
	}
	inner := Text("x")
	if Concat(nil, Nil(), inner) != inner {
		t.Errorf("single-part Concat should return the part unwrapped")
	}
	d := Concat(Text("a"), Text("b"))
	if d.Kind() != KindConcat || len(d.Parts()) != 2 {
		t.Fatalf("Concat kind=%v parts=%d", d.Kind(), len(d.Parts()))
	}
}

func TestForcedBreakPropagation(t *testing.T) {
	cases := []struct {
		name   string
		doc    *Doc
		forces bool
	}{
		{"text", Text("a"), false},
		{"soft line", SoftLine(), false},
		{"space line", Line(), false},
		{"hard line", HardLine(), true},
		{"literal line", LiteralLine(), true},
		{"blank line", BlankLine(), true},
		{"break parent", BreakParent(), true},
		{"concat with hard line", Concat(Text("a"), HardLine()), true},
		{"indent over hard line", Indent(HardLine()), true},
		{"group over hard line", Group(Concat(Text("a"), HardLine())), true},
		{"group over soft line", Group(Concat(Text("a"), SoftLine())), false},
		{"pre-broken group", GroupWith(GroupOptions{ShouldBreak: true}, Text("a")), true},
		{"fill with hard item", Fill([]*Doc{Text("a"), HardLine()}, []*Doc{Line()}), true},
		{"line suffix swallows hard line", LineSuffix(HardLine()), false},
		{"if-break with hard broken body", IfBreak(HardLine(), Text(",")), false},
		{"if-break with hard flat body", IfBreak(Text(","), HardLine()), true},
		{
			"conditional group, one flat alternative",
			ConditionalGroup(Text("a"), Concat(Text("a"), HardLine())),
			false,
		},
		{
			"conditional group, all alternatives hard",
			ConditionalGroup(Concat(Text("a"), HardLine()), HardLine()),
			true,
		},
	}
	for _, tc := range cases {
		if tc.doc.ForcesBreak() != tc.forces {
			t.Errorf("%s: ForcesBreak() = %v, want %v", tc.name, tc.doc.ForcesBreak(), tc.forces)
		}
	}
}

func TestFillShapeValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Fill with mismatched separators must panic")
		}
	}()
	Fill([]*Doc{Text("a"), Text("b")}, nil)
}

func TestJoin(t *testing.T) {
	d := Join(Line(), []*Doc{Text("a"), Text("b"), Text("c")})
	if d.Kind() != KindConcat {
		t.Fatalf("Join kind = %v", d.Kind())
	}
	if got := len(d.Parts()); got != 5 {
		t.Fatalf("Join parts = %d, want 5", got)
	}
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()
	if id := a.Next(); id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}
	if id := a.Next(); id != 2 {
		t.Errorf("second id = %d, want 2", id)
	}
	if a.Count() != 2 {
		t.Errorf("Count = %d, want 2", a.Count())
	}
}

func TestSharedLeavesAreStable(t *testing.T) {
	if HardLine() != HardLine() || Line() != Line() || BreakParent() != BreakParent() {
		t.Errorf("leaf constructors must return shared values")
	}
}
