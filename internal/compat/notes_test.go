package compat

import (
	"reflect"
	"testing"
)

func TestResolveNotes(t *testing.T) {
	index := NotesIndex{"1": "foo", "2": "bar", "10": "baz"}
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"no markers", "12", nil},
		{"single reference", "12 #1", []string{"#1: foo"}},
		{"two references in order", "12 #1 #2", []string{"#1: foo", "#2: bar"}},
		{"order follows the string", "12 #2 #1", []string{"#2: bar", "#1: foo"}},
		{"unmatched reference dropped", "12 #9", nil},
		{"mixed matched and unmatched", "12 #9 #2", []string{"#2: bar"}},
		{"identical tokens resolve once", "12 #1 #1", []string{"#1: foo"}},
		{"multi-digit number", "12 #10", []string{"#10: baz"}},
		{"marker glued to version", "12#1", []string{"#1: foo"}},
		{"trailing bare marker", "12 #", nil},
		{"empty string", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNotes(tt.raw, index)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveNotes(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveNotesNilIndex(t *testing.T) {
	if got := ResolveNotes("12 #1", nil); got != nil {
		t.Errorf("ResolveNotes with nil index = %v, want nil", got)
	}
}

func TestAnnotateVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"12", "12"},
		{"12 #1", "12 #1 (see notes)"},
		// The suffix appears even when no reference resolves; the marker
		// alone signals a footnote exists upstream.
		{"12 #9", "12 #9 (see notes)"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := AnnotateVersion(tt.raw); got != tt.want {
			t.Errorf("AnnotateVersion(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestJoinNotes(t *testing.T) {
	if got := JoinNotes([]string{"#1: foo", "#2: bar"}); got != "#1: foo\n#2: bar" {
		t.Errorf("JoinNotes = %q", got)
	}
	if got := JoinNotes(nil); got != "" {
		t.Errorf("JoinNotes(nil) = %q, want empty", got)
	}
}
