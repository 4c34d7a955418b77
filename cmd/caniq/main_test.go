package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"caniq/internal/compat"
	"caniq/internal/config"
)

func TestCommandWiring(t *testing.T) {
	want := map[string]bool{"query": false, "feature": false, "history": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestQueryFlags(t *testing.T) {
	for _, flag := range []string{"json", "long", "parallel"} {
		if queryCmd.Flags().Lookup(flag) == nil {
			t.Errorf("query flag --%s not registered", flag)
		}
	}
	if queryCmd.Flags().Lookup("pick") == nil {
		t.Error("query flag --pick not registered")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("persistent flag --verbose not registered")
	}
}

func testRenderer(t *testing.T) *renderer {
	t.Helper()
	old := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = old })
	return newRenderer()
}

func TestRenderFeatureNoData(t *testing.T) {
	r := testRenderer(t)

	var f compat.Feature
	if err := json.Unmarshal([]byte(`{"title": "orphan feature"}`), &f); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r.RenderFeature(&buf, 1, "orphan", &f)
	out := buf.String()
	if !strings.Contains(out, "No compatibility data available.") {
		t.Errorf("missing no-data placeholder:\n%s", out)
	}
	if !strings.Contains(out, "orphan feature") {
		t.Errorf("missing title:\n%s", out)
	}
}

func TestRenderFeatureTableAndExtras(t *testing.T) {
	r := testRenderer(t)

	var f compat.Feature
	err := json.Unmarshal([]byte(`{
		"title": "CSS Grid",
		"description": "Two-dimensional <code>grid</code> layout",
		"support": {"chrome": "57", "ie": false, "edge": {"version_added": "16 #1"}},
		"notes_by_num": {"1": "Behind a flag"},
		"usage_perc_y": 96.1
	}`), &f)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r.RenderFeature(&buf, 1, "css-grid", &f)
	out := buf.String()

	for _, want := range []string{
		"CSS Grid",
		"Two-dimensional grid layout", // HTML stripped
		"✅ chrome",
		"❌ ie",
		"16 #1 (see notes)",
		"#1: Behind a flag",
		"Note 1: Behind a flag",
		"usage_perc_y",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	r := testRenderer(t)

	var f compat.Feature
	if err := json.Unmarshal([]byte(`{"title": "WS", "support": {"chrome": "16"}}`), &f); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.RenderJSON(&buf, []string{"websockets"}, []*compat.Feature{&f}); err != nil {
		t.Fatal(err)
	}

	var decoded []featureJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].ID != "websockets" {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded[0].Rows) != 1 || decoded[0].Rows[0].Support != "16" {
		t.Errorf("rows = %+v", decoded[0].Rows)
	}
}

func TestSortedNoteNums(t *testing.T) {
	notes := compat.NotesIndex{"10": "", "2": "", "1": ""}
	got := sortedNoteNums(notes)
	want := []string{"1", "2", "10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedNoteNums = %v, want %v", got, want)
		}
	}
}
