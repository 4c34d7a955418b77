package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/glamour"

	"caniq/cmd/caniq/ui"
	"caniq/internal/compat"
)

// renderer turns normalized features into console output. All layout
// decisions live here; the engine only hands over rows.
type renderer struct {
	styles   ui.Styles
	markdown *glamour.TermRenderer
}

func newRenderer() *renderer {
	theme := ui.ResolveTheme(cfg.UI.Theme)
	r := &renderer{styles: ui.NewStyles(theme)}
	if longDesc {
		r.markdown = ui.NewMarkdownRenderer(theme, cfg.UI.Wrap)
	}
	return r
}

// RenderSearchHeader echoes the search term and the matched feature IDs.
func (r *renderer) RenderSearchHeader(w io.Writer, term string, ids []string) {
	fmt.Fprintf(w, "%s %s\n", "🔍", r.styles.Title.Render("Search term: "+term))
	fmt.Fprintf(w, "%s %s\n", "🏷️ ", r.styles.Bold.Render("Matched features:"))
	for _, id := range ids {
		fmt.Fprintf(w, "  • %s\n", r.styles.Body.Render(id))
	}
}

// RenderFeature prints one feature section: metadata, the support table
// (or the no-data placeholder), the notes index, and any extra fields the
// record carried.
func (r *renderer) RenderFeature(w io.Writer, index int, id string, f *compat.Feature) {
	fmt.Fprintf(w, "\n%s %s\n", "🔹", r.styles.Title.Render(fmt.Sprintf("Feature %d: %s", index, id)))

	if f.Title != "" {
		fmt.Fprintf(w, "  📌 %s\n", r.styles.Bold.Render(f.Title))
	}
	if f.Description != "" {
		fmt.Fprintf(w, "  📝 %s\n", r.describe(f.Description))
	}
	if f.Spec != "" {
		fmt.Fprintf(w, "  📘 Spec: %s\n", r.styles.Link.Render(f.Spec))
	}
	if f.Status != "" {
		fmt.Fprintf(w, "  🚦 Status: %s\n", f.Status)
	}
	if f.MDNURL != "" {
		fmt.Fprintf(w, "  🔗 MDN: %s\n", r.styles.Link.Render(f.MDNURL))
	}

	fmt.Fprintf(w, "\n  🖥️  %s\n", r.styles.Bold.Render("Browser Compatibility:"))
	rows := compat.BuildRows(f)
	if len(rows) == 0 {
		fmt.Fprintf(w, "  %s\n", r.styles.Muted.Render("No compatibility data available."))
	} else {
		table := ui.NewSupportTable()
		for _, row := range rows {
			table.AddRow(row.Status.Emoji()+" "+row.Target, row.Support, row.Notes)
		}
		fmt.Fprint(w, table.View(r.styles))
	}

	if len(f.NotesByNum) > 0 {
		fmt.Fprintf(w, "\n  📓 %s\n", r.styles.Bold.Render("Notes:"))
		for _, num := range sortedNoteNums(f.NotesByNum) {
			fmt.Fprintf(w, "    Note %s: %s\n", num, ui.StripHTML(f.NotesByNum[num]))
		}
	}

	if len(f.Extra) > 0 {
		fmt.Fprintf(w, "\n  ℹ️  %s\n", r.styles.Bold.Render("Extra information:"))
		for _, field := range f.Extra {
			fmt.Fprintf(w, "    %s: %s\n", r.styles.Bold.Render(field.Key), field.Value)
		}
	}
	fmt.Fprintln(w)
}

// describe renders a feature description: glamour markdown with --long,
// otherwise flattened to a single plain-text line.
func (r *renderer) describe(desc string) string {
	if r.markdown != nil {
		return ui.RenderMarkdown(r.markdown, desc)
	}
	return ui.StripHTML(desc)
}

// featureJSON is the --json output unit for one feature.
type featureJSON struct {
	ID     string                 `json:"id"`
	Title  string                 `json:"title,omitempty"`
	Status string                 `json:"status,omitempty"`
	Rows   []compat.NormalizedRow `json:"rows"`
}

// RenderJSON emits the normalized rows for every feature as a JSON array.
func (r *renderer) RenderJSON(w io.Writer, ids []string, features []*compat.Feature) error {
	out := make([]featureJSON, len(features))
	for i, f := range features {
		out[i] = featureJSON{
			ID:     ids[i],
			Title:  f.Title,
			Status: f.Status,
			Rows:   compat.BuildRows(f),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// sortedNoteNums orders note numbers numerically where possible so "2"
// precedes "10".
func sortedNoteNums(notes compat.NotesIndex) []string {
	nums := make([]string, 0, len(notes))
	for n := range notes {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool {
		if len(nums[i]) != len(nums[j]) {
			return len(nums[i]) < len(nums[j])
		}
		return nums[i] < nums[j]
	})
	return nums
}
