package compat

import (
	"sort"
	"strings"
)

// NormalizedRow is the engine's output unit: one browser's support for one
// feature, ready for tabular display.
type NormalizedRow struct {
	Target  string `json:"target"`
	Status  Status `json:"-"`
	Tag     string `json:"status"`
	Support string `json:"support"`
	Notes   string `json:"notes,omitempty"`
}

// classifyRaw classifies the leading whitespace-delimited token of a raw
// support string. Upstream strings often carry footnote markers after the
// verdict ("y #2", "12 #1"); the verdict is always the first token.
func classifyRaw(raw string) Status {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Classify("")
	}
	return Classify(fields[0])
}

// buildRow runs one raw support string through classification and note
// resolution.
func buildRow(target, raw string, notes NotesIndex) NormalizedRow {
	status := classifyRaw(raw)
	return NormalizedRow{
		Target:  target,
		Status:  status,
		Tag:     status.Label(),
		Support: AnnotateVersion(raw),
		Notes:   JoinNotes(ResolveNotes(raw, notes)),
	}
}

// BuildRows normalizes a feature record into one row per browser. The
// detailed support map takes precedence; the stats map is consulted only
// when no support map is present, and the two are never merged. Browsers
// are emitted in sorted order so repeated runs over the same record yield
// identical sequences. A record with neither shape yields zero rows.
func BuildRows(f *Feature) []NormalizedRow {
	switch {
	case len(f.Support) > 0:
		rows := make([]NormalizedRow, 0, len(f.Support))
		for _, target := range sortedKeys(f.Support) {
			rows = append(rows, buildRow(target, f.Support[target].RawVersion(), f.NotesByNum))
		}
		return rows
	case len(f.Stats) > 0:
		rows := make([]NormalizedRow, 0, len(f.Stats))
		for _, target := range sortedKeys(f.Stats) {
			_, raw := f.Stats[target].Current()
			rows = append(rows, buildRow(target, raw, f.NotesByNum))
		}
		return rows
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
