package forms

// FileAttachment is a file held for submission, kept apart from scalar
// values because it travels as a multipart part, not JSON.
type FileAttachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Draft aggregates the dynamic state of one in-progress application:
// scalar values and file attachments, both keyed by field id. It is the
// single source of truth the assembler reads from.
type Draft struct {
	Values map[string]any // string | []string | bool per field kind
	Files  map[string]FileAttachment
}

func NewDraft() *Draft {
	return &Draft{
		Values: map[string]any{},
		Files:  map[string]FileAttachment{},
	}
}

func (d *Draft) Set(fieldID string, v any) { d.Values[fieldID] = v }

func (d *Draft) SetFile(fieldID string, f FileAttachment) { d.Files[fieldID] = f }

// CheckOption adds one option value to a multiselect field, never twice.
func (d *Draft) CheckOption(fieldID, value string) {
	cur, _ := d.Values[fieldID].([]string)
	for _, v := range cur {
		if v == value {
			return
		}
	}
	d.Values[fieldID] = append(cur, value)
}

// UncheckOption removes one option value from a multiselect field.
func (d *Draft) UncheckOption(fieldID, value string) {
	cur, _ := d.Values[fieldID].([]string)
	out := cur[:0]
	for _, v := range cur {
		if v != value {
			out = append(out, v)
		}
	}
	d.Values[fieldID] = out
}

// Checked reports membership of value in a multiselect field's array.
func (d *Draft) Checked(fieldID, value string) bool {
	cur, _ := d.Values[fieldID].([]string)
	for _, v := range cur {
		if v == value {
			return true
		}
	}
	return false
}

// Reset drops all dynamic state. Called after a confirmed successful
// submission so nothing leaks into the next application.
func (d *Draft) Reset() {
	d.Values = map[string]any{}
	d.Files = map[string]FileAttachment{}
}
