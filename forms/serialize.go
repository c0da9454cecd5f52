package forms

import "encoding/json"

// ExtraFieldEntry is one element of the extra_fields JSON array.
type ExtraFieldEntry struct {
	FieldID string `json:"field_id"`
	Value   any    `json:"value"`
}

// ExtraFieldEntries serializes the draft's scalar values in render order.
// Booleans are stringified to "true"/"false"; strings and string arrays
// pass through as-is. File kinds are skipped (they travel as parts), as
// are fields with no value set.
func ExtraFieldEntries(fields []Field, d *Draft) []ExtraFieldEntry {
	entries := []ExtraFieldEntry{}
	for _, f := range EnabledSorted(fields) {
		if f.Kind.TakesFile() {
			continue
		}
		v, ok := d.Values[f.ID]
		if ValueEmpty(v, ok) {
			continue
		}
		if b, isBool := v.(bool); isBool {
			if b {
				v = "true"
			} else {
				v = "false"
			}
		}
		entries = append(entries, ExtraFieldEntry{FieldID: f.ID, Value: v})
	}
	return entries
}

// EncodeExtraFields renders the entries as the single JSON string part
// the wire contract expects.
func EncodeExtraFields(fields []Field, d *Draft) ([]byte, error) {
	return json.Marshal(ExtraFieldEntries(fields, d))
}
