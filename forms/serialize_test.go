package forms

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExtraFieldEntriesSelectValue(t *testing.T) {
	fields := []Field{
		{ID: "11", Key: "bus_route", Kind: KindSelect, Required: true, Enabled: true,
			Options: []Option{{Value: "a", Label: "a"}, {Value: "b", Label: "b"}}},
	}
	d := NewDraft()
	d.Set("11", "a")

	raw, err := EncodeExtraFields(fields, d)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"field_id":"11","value":"a"}]`
	if string(raw) != want {
		t.Fatalf("extra_fields = %s, want %s", raw, want)
	}
}

func TestExtraFieldEntriesToggleStringified(t *testing.T) {
	fields := []Field{
		{ID: "4", Key: "boarding", Kind: KindToggle, Enabled: true},
		{ID: "5", Key: "day_scholar", Kind: KindToggle, Enabled: true},
	}
	d := NewDraft()
	d.Set("4", true)
	d.Set("5", false)

	raw, err := EncodeExtraFields(fields, d)
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	if !strings.Contains(s, `{"field_id":"4","value":"true"}`) {
		t.Fatalf("true toggle not stringified: %s", s)
	}
	if !strings.Contains(s, `{"field_id":"5","value":"false"}`) {
		t.Fatalf("false toggle not stringified: %s", s)
	}
}

func TestExtraFieldEntriesSkipFilesAndUnset(t *testing.T) {
	fields := []Field{
		{ID: "1", Key: "photo", Kind: KindPhoto, Enabled: true},
		{ID: "2", Key: "nickname", Kind: KindText, Enabled: true},
		{ID: "3", Key: "languages", Kind: KindMultiselect, Enabled: true},
	}
	d := NewDraft()
	d.SetFile("1", FileAttachment{FileName: "me.jpg"})
	d.Set("3", []string{"dari", "pashto"})

	entries := ExtraFieldEntries(fields, d)
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want only the multiselect", entries)
	}
	if entries[0].FieldID != "3" {
		t.Fatalf("entry field = %s, want 3", entries[0].FieldID)
	}
}

func TestExtraFieldEntriesFollowRenderOrder(t *testing.T) {
	fields := []Field{
		{ID: "b", Key: "second", Kind: KindText, Enabled: true, SortOrder: 5},
		{ID: "a", Key: "first", Kind: KindText, Enabled: true, SortOrder: 2},
	}
	d := NewDraft()
	d.Set("a", "1")
	d.Set("b", "2")

	entries := ExtraFieldEntries(fields, d)
	if entries[0].FieldID != "a" || entries[1].FieldID != "b" {
		t.Fatalf("entries out of render order: %+v", entries)
	}
}

func TestEncodeExtraFieldsEmptyDraftIsEmptyArray(t *testing.T) {
	raw, err := EncodeExtraFields(nil, NewDraft())
	if err != nil {
		t.Fatal(err)
	}
	var arr []any
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) != 0 {
		t.Fatalf("empty draft encodes to %s", raw)
	}
}
