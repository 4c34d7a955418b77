// Package compat normalizes caniuse.com browser-support records into
// comparable rows. The upstream data is third-party and loosely shaped, so
// every function in this package is total: malformed values degrade to
// StatusUnknown or empty strings instead of returning errors. The package
// performs no I/O and holds no state, so it is safe to use concurrently
// across independent feature records.
package compat

import (
	"math"
	"strconv"
	"strings"
)

// Status is the canonical support classification for one browser/feature pair.
type Status int

const (
	StatusUnknown Status = iota
	StatusSupported
	StatusUnsupported
	StatusPartial
)

// Emoji returns the tag rendered in the support table.
func (s Status) Emoji() string {
	switch s {
	case StatusSupported:
		return "✅"
	case StatusUnsupported:
		return "❌"
	case StatusPartial:
		return "🟨"
	default:
		return "❓"
	}
}

// Label returns a plain-text name, used for --json output and logs.
func (s Status) Label() string {
	switch s {
	case StatusSupported:
		return "supported"
	case StatusUnsupported:
		return "unsupported"
	case StatusPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Classify maps a raw support string to a Status. The checks run in order
// and the first match wins; in particular a bare version number must be
// recognized as supported before the literal keyword checks, since a
// version string is never one of the keywords.
func Classify(raw string) Status {
	if raw == "false" {
		return StatusUnsupported
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return StatusSupported
	}
	switch {
	case strings.EqualFold(raw, "y") || strings.EqualFold(raw, "true"):
		return StatusSupported
	case strings.EqualFold(raw, "n") || strings.EqualFold(raw, "false"):
		return StatusUnsupported
	case strings.EqualFold(raw, "a") || strings.EqualFold(raw, "partial"):
		return StatusPartial
	default:
		return StatusUnknown
	}
}
