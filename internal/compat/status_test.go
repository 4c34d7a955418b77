package compat

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{"exact false", "false", StatusUnsupported},
		{"uppercase FALSE", "FALSE", StatusUnsupported},
		{"bare version", "12", StatusSupported},
		{"decimal version", "5.5", StatusSupported},
		{"negative number", "-1", StatusSupported},
		{"scientific notation", "1e3", StatusSupported},
		{"infinity is not a version", "inf", StatusUnknown},
		{"nan is not a version", "NaN", StatusUnknown},
		{"y", "y", StatusSupported},
		{"Y", "Y", StatusSupported},
		{"true", "true", StatusSupported},
		{"TRUE", "TRUE", StatusSupported},
		{"n", "n", StatusUnsupported},
		{"N", "N", StatusUnsupported},
		{"a", "a", StatusPartial},
		{"partial", "partial", StatusPartial},
		{"PARTIAL", "PARTIAL", StatusPartial},
		{"empty", "", StatusUnknown},
		{"garbage", "xyz", StatusUnknown},
		{"version with trailing text", "12 #1", StatusUnknown},
		{"unknown sentinel", "unknown", StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.raw); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusRenderings(t *testing.T) {
	tests := []struct {
		status Status
		emoji  string
		label  string
	}{
		{StatusSupported, "✅", "supported"},
		{StatusUnsupported, "❌", "unsupported"},
		{StatusPartial, "🟨", "partial"},
		{StatusUnknown, "❓", "unknown"},
		{Status(99), "❓", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.status.Emoji(); got != tt.emoji {
				t.Errorf("Emoji() = %q, want %q", got, tt.emoji)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}
