package forms

import (
	"sort"
	"strings"
)

// Kind is the declared type of a dynamic admission field.
type Kind string

const (
	KindText        Kind = "text"
	KindTextarea    Kind = "textarea"
	KindPhone       Kind = "phone"
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiselect Kind = "multiselect"
	KindDate        Kind = "date"
	KindToggle      Kind = "toggle"
	KindEmail       Kind = "email"
	KindIDNumber    Kind = "id_number"
	KindAddress     Kind = "address"
	KindPhoto       Kind = "photo"
	KindFile        Kind = "file"
)

var allKinds = map[Kind]bool{
	KindText: true, KindTextarea: true, KindPhone: true, KindNumber: true,
	KindSelect: true, KindMultiselect: true, KindDate: true, KindToggle: true,
	KindEmail: true, KindIDNumber: true, KindAddress: true, KindPhoto: true,
	KindFile: true,
}

// ParseKind maps a stored field_type string to a Kind. Unknown strings
// come back as KindText with ok=false so callers can reject them on write
// while still rendering legacy rows as plain text.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.TrimSpace(s))
	if allKinds[k] {
		return k, true
	}
	return KindText, false
}

// TakesFile reports whether values for this kind travel as file parts
// rather than inline scalars.
func (k Kind) TakesFile() bool { return k == KindFile || k == KindPhoto }

// TakesOptions reports whether the kind draws its values from an option list.
func (k Kind) TakesOptions() bool { return k == KindSelect || k == KindMultiselect }

// Option is one choice of a select/multiselect field. The registry's
// comma-string editor always produces value == label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParseOptions splits a comma-separated editor string into options,
// dropping empty tokens after trimming.
func ParseOptions(s string) []Option {
	var out []Option
	for _, tok := range strings.Split(s, ",") {
		t := strings.TrimSpace(tok)
		if t == "" {
			continue
		}
		out = append(out, Option{Value: t, Label: t})
	}
	return out
}

// Field is the renderer's view of one dynamic field.
type Field struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"field_type"`
	Required    bool     `json:"is_required"`
	Enabled     bool     `json:"is_enabled"`
	SortOrder   int      `json:"sort_order"`
	Placeholder string   `json:"placeholder,omitempty"`
	HelpText    string   `json:"help_text,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Control     Control  `json:"control"`
}

// Control describes the input widget a client should render for a field.
type Control struct {
	Input     string `json:"input"`                // text|textarea|select|checkboxes|date|switch|file
	InputMode string `json:"input_mode,omitempty"` // numeric|email|tel affordance hints
	Accept    string `json:"accept,omitempty"`     // mime filter for file pickers
	Multiline bool   `json:"multiline,omitempty"`
}

// ControlFor maps a kind to its widget. The switch is exhaustive over all
// declared kinds; adding a kind without a case here fails the kind tests.
func ControlFor(k Kind) Control {
	switch k {
	case KindTextarea, KindAddress:
		return Control{Input: "textarea", Multiline: true}
	case KindSelect:
		return Control{Input: "select"}
	case KindMultiselect:
		return Control{Input: "checkboxes"}
	case KindDate:
		return Control{Input: "date"}
	case KindToggle:
		return Control{Input: "switch"}
	case KindFile:
		return Control{Input: "file"}
	case KindPhoto:
		return Control{Input: "file", Accept: "image/*"}
	case KindNumber:
		return Control{Input: "text", InputMode: "numeric"}
	case KindEmail:
		return Control{Input: "text", InputMode: "email"}
	case KindPhone:
		return Control{Input: "text", InputMode: "tel"}
	case KindText, KindIDNumber:
		return Control{Input: "text"}
	}
	return Control{Input: "text"}
}

// SortFields orders fields for rendering: sort_order ascending, ties kept
// in their incoming order.
func SortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].SortOrder < fields[j].SortOrder
	})
}

// EnabledSorted returns only the enabled fields, render-ordered.
func EnabledSorted(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Enabled {
			out = append(out, f)
		}
	}
	SortFields(out)
	return out
}
