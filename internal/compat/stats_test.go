package compat

import "testing"

func TestStatsEntryCurrent(t *testing.T) {
	tests := []struct {
		name        string
		entry       StatsEntry
		wantLabel   string
		wantSupport string
	}{
		{
			name:        "max numeric label wins",
			entry:       StatsEntry{"12": "y", "7": "n", "beta": "a"},
			wantLabel:   "12",
			wantSupport: "y",
		},
		{
			name:        "decimal ordering is numeric not lexicographic",
			entry:       StatsEntry{"9": "n", "10": "y", "10.5": "y"},
			wantLabel:   "10.5",
			wantSupport: "y",
		},
		{
			name:        "all non-numeric ties break lexicographically",
			entry:       StatsEntry{"beta": "a", "nightly": "y"},
			wantLabel:   "nightly",
			wantSupport: "y",
		},
		{
			name:        "non-numeric never beats numeric",
			entry:       StatsEntry{"zz": "y", "1": "n"},
			wantLabel:   "1",
			wantSupport: "n",
		},
		{
			name:        "empty entry",
			entry:       StatsEntry{},
			wantLabel:   "",
			wantSupport: "",
		},
		{
			name:        "single label",
			entry:       StatsEntry{"TP": "a #1"},
			wantLabel:   "TP",
			wantSupport: "a #1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, support := tt.entry.Current()
			if label != tt.wantLabel || support != tt.wantSupport {
				t.Errorf("Current() = (%q, %q), want (%q, %q)",
					label, support, tt.wantLabel, tt.wantSupport)
			}
		})
	}
}

// Selection must not depend on map iteration order.
func TestStatsEntryCurrentDeterministic(t *testing.T) {
	entry := StatsEntry{"beta": "a", "canary": "y", "nightly": "n", "dev": "y"}
	wantLabel, wantSupport := entry.Current()
	for i := 0; i < 50; i++ {
		label, support := entry.Current()
		if label != wantLabel || support != wantSupport {
			t.Fatalf("run %d: Current() = (%q, %q), want (%q, %q)",
				i, label, support, wantLabel, wantSupport)
		}
	}
}
