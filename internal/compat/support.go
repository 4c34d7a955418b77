package compat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SupportKind tags the shape a SupportValue was decoded from.
type SupportKind int

const (
	// SupportBool is a direct true/false flag.
	SupportBool SupportKind = iota
	// SupportLabel is an already-formatted human string, e.g. "unknown"
	// or a bare version number.
	SupportLabel
	// SupportDetail is an open-ended object. The only key this package
	// interprets is "version_added"; everything else is preserved in
	// Detail untouched.
	SupportDetail
)

// SupportValue is one feature's support entry for one browser, decoded from
// whichever of the three upstream shapes the record happened to use.
// Exactly one shape is active, indicated by Kind.
type SupportValue struct {
	Kind   SupportKind
	Bool   bool
	Label  string
	Detail map[string]json.RawMessage
}

// UnmarshalJSON classifies the raw value into one of the three shapes with
// no data loss. Any other JSON type (number, array, null) is a structural
// error: that boundary belongs to the decoder, not to classification.
func (v *SupportValue) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for every target type, so it
	// would otherwise slip through the bool probe below.
	if string(bytes.TrimSpace(data)) == "null" {
		return fmt.Errorf("support value is null")
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = SupportValue{Kind: SupportBool, Bool: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = SupportValue{Kind: SupportLabel, Label: s}
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		*v = SupportValue{Kind: SupportDetail, Detail: obj}
		return nil
	}
	return fmt.Errorf("support value is not a bool, string, or object: %s", data)
}

// MarshalJSON writes the active shape back out unchanged.
func (v SupportValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case SupportBool:
		return json.Marshal(v.Bool)
	case SupportLabel:
		return json.Marshal(v.Label)
	default:
		return json.Marshal(v.Detail)
	}
}

// RawVersion returns the canonical raw version string for the value.
// Booleans become the literal "true"/"false". For a Detail shape the
// "version_added" sub-value is used: strings pass through, booleans are
// formatted, and anything else (including an absent key) yields the
// sentinel "unknown".
func (v SupportValue) RawVersion() string {
	switch v.Kind {
	case SupportBool:
		return strconv.FormatBool(v.Bool)
	case SupportLabel:
		return v.Label
	default:
		raw, ok := v.Detail["version_added"]
		if !ok {
			return "unknown"
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return strconv.FormatBool(b)
		}
		return "unknown"
	}
}
