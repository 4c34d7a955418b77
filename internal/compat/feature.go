package compat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtraField is one unrecognized key/value pair from a feature record,
// kept in document order. The engine never interprets these; they exist
// so the caller can display everything upstream sent.
type ExtraField struct {
	Key   string
	Value json.RawMessage
}

// Feature is one decoded caniuse feature record. Known fields are parsed
// strictly; every other key lands in Extra untouched. A record carries at
// most one of Support (the detailed per-browser shape) and Stats (the
// per-browser version history); when both are present Support wins and
// Stats is ignored for row building.
type Feature struct {
	Title       string
	Description string
	Spec        string
	Status      string
	MDNURL      string

	Support    map[string]SupportValue
	Stats      map[string]StatsEntry
	NotesByNum NotesIndex

	Extra []ExtraField
}

// HasData reports whether the record carries either support shape. A
// feature without one yields zero rows, which the caller renders as a
// "no compatibility data" placeholder rather than an error.
func (f *Feature) HasData() bool {
	return len(f.Support) > 0 || len(f.Stats) > 0
}

// UnmarshalJSON walks the object token by token so that unrecognized
// fields keep their document order in Extra. Known fields that fail to
// decode are structural errors; shape oddities inside support values are
// handled later by classification, not here.
func (f *Feature) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("feature record is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		var dst any
		switch key {
		case "title":
			dst = &f.Title
		case "description":
			dst = &f.Description
		case "spec":
			dst = &f.Spec
		case "status":
			dst = &f.Status
		case "mdn_url":
			dst = &f.MDNURL
		case "support":
			dst = &f.Support
		case "stats":
			dst = &f.Stats
		case "notes_by_num":
			dst = &f.NotesByNum
		default:
			f.Extra = append(f.Extra, ExtraField{Key: key, Value: raw})
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}
