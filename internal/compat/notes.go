package compat

import "strings"

// NotesIndex maps footnote numbers (as string keys, the upstream encoding)
// to explanation text. A nil index is valid and resolves nothing.
type NotesIndex map[string]string

// noteSeparator joins resolved footnote entries in a NormalizedRow.
const noteSeparator = "\n"

// seeNotesSuffix marks a version string that carries footnote references.
const seeNotesSuffix = " (see notes)"

// noteTokens extracts the footnote numbers referenced in raw, in order of
// appearance. A reference is the run of non-space characters immediately
// following a '#'; an empty run (trailing '#') is skipped.
func noteTokens(raw string) []string {
	var tokens []string
	for i := 0; i < len(raw); i++ {
		if raw[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(raw) && !isSpace(raw[j]) {
			j++
		}
		if j > i+1 {
			tokens = append(tokens, raw[i+1:j])
		}
		i = j - 1
	}
	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ResolveNotes looks up every footnote reference embedded in raw against
// the index and returns the formatted entries ("#<num>: <text>") in their
// original left-to-right order. Unmatched references are dropped silently:
// the upstream notes table is frequently incomplete and a dangling marker
// is not worth failing over. Repeated references to the same note resolve
// once.
func ResolveNotes(raw string, notes NotesIndex) []string {
	tokens := noteTokens(raw)
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	var entries []string
	for _, num := range tokens {
		if _, dup := seen[num]; dup {
			continue
		}
		seen[num] = struct{}{}
		if text, ok := notes[num]; ok {
			entries = append(entries, "#"+num+": "+text)
		}
	}
	return entries
}

// JoinNotes renders resolved entries as the single notes string carried by
// a NormalizedRow.
func JoinNotes(entries []string) string {
	return strings.Join(entries, noteSeparator)
}

// AnnotateVersion appends the "(see notes)" suffix whenever raw contains a
// footnote marker, whether or not any reference resolves.
func AnnotateVersion(raw string) string {
	if strings.ContainsRune(raw, '#') {
		return raw + seeNotesSuffix
	}
	return raw
}
