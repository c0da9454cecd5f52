package forms

// ValueEmpty applies the emptiness rules for scalar dynamic values:
// missing, nil, empty string or empty array count as empty. A set toggle
// is never empty, whatever its boolean value.
func ValueEmpty(v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case bool:
		return false
	}
	return false
}

// MissingRequired returns the keys of enabled+required fields the draft
// does not satisfy: file kinds need an attachment, everything else a
// non-empty value. Disabled fields are never considered, required or not.
// A non-empty result blocks submission before anything touches the wire.
func MissingRequired(fields []Field, d *Draft) []string {
	var missing []string
	for _, f := range fields {
		if !f.Enabled || !f.Required {
			continue
		}
		if f.Kind.TakesFile() {
			if _, ok := d.Files[f.ID]; !ok {
				missing = append(missing, f.Key)
			}
			continue
		}
		v, ok := d.Values[f.ID]
		if ValueEmpty(v, ok) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
