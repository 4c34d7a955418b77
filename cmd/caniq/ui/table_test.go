package ui

import (
	"strings"
	"testing"
)

func plainStyles() Styles {
	// Styles without a terminal attached render no escape codes, which
	// keeps assertions readable.
	return NewStyles(LightTheme())
}

func TestSupportTableEmpty(t *testing.T) {
	table := NewSupportTable()
	if got := table.View(plainStyles()); got != "" {
		t.Errorf("empty table rendered %q, want empty", got)
	}
}

func TestSupportTableRendersCells(t *testing.T) {
	table := NewSupportTable()
	table.AddRow("✅ chrome", "57", "")
	table.AddRow("❌ ie", "false", "")

	out := table.View(plainStyles())
	for _, want := range []string{"Browser", "Support", "Notes", "chrome", "57", "ie", "false"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSupportTableMultiLineNotes(t *testing.T) {
	table := NewSupportTable()
	table.AddRow("🟨 safari", "TP (see notes)", "#1: foo\n#2: bar")

	out := table.View(plainStyles())
	if !strings.Contains(out, "#1: foo") || !strings.Contains(out, "#2: bar") {
		t.Errorf("multi-line notes not rendered:\n%s", out)
	}
	// The second note line must be on its own terminal line.
	lines := strings.Split(out, "\n")
	var noteLines int
	for _, l := range lines {
		if strings.Contains(l, "#1: foo") || strings.Contains(l, "#2: bar") {
			noteLines++
		}
	}
	if noteLines != 2 {
		t.Errorf("expected notes on 2 lines, got %d:\n%s", noteLines, out)
	}
}

func TestSplitRowLines(t *testing.T) {
	lines := splitRowLines([]string{"a", "x\ny\nz", "b"})
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0][0] != "a" || lines[0][1] != "x" || lines[0][2] != "b" {
		t.Errorf("first line = %v", lines[0])
	}
	if lines[1][0] != "" || lines[1][1] != "y" || lines[1][2] != "" {
		t.Errorf("second line = %v", lines[1])
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "CSS Grid layout", "CSS Grid layout"},
		{"tags removed", "Method of using a <code>grid</code> layout", "Method of using a grid layout"},
		{"links keep their text", `See <a href="https://example.com">the spec</a>.`, "See the spec."},
		{"entities decoded", "rows &amp; columns", "rows & columns"},
		{"nested markup", "<p><b>bold</b> and <i>italic</i></p>", "bold and italic"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	if got := ResolveTheme("light"); got.IsDark {
		t.Error("light resolved to dark")
	}
	if got := ResolveTheme("dark"); !got.IsDark {
		t.Error("dark resolved to light")
	}
}
