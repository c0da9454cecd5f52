package forms

import (
	"reflect"
	"testing"
)

func requiredField(id, key string, kind Kind) Field {
	return Field{ID: id, Key: key, Kind: kind, Required: true, Enabled: true}
}

func TestMissingRequiredPerKind(t *testing.T) {
	fields := []Field{
		requiredField("1", "notes", KindTextarea),
		requiredField("2", "bus_route", KindSelect),
		requiredField("3", "languages", KindMultiselect),
		requiredField("4", "boarding", KindToggle),
		requiredField("5", "vaccination_card", KindFile),
	}

	d := NewDraft()
	missing := MissingRequired(fields, d)
	want := []string{"notes", "bus_route", "languages", "boarding", "vaccination_card"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("all-empty draft missing = %v, want %v", missing, want)
	}

	d.Set("1", "some text")
	d.Set("2", "a")
	d.Set("3", []string{"pashto"})
	d.Set("4", false) // a set toggle counts, whatever its value
	d.SetFile("5", FileAttachment{FileName: "card.pdf"})
	if missing := MissingRequired(fields, d); missing != nil {
		t.Fatalf("filled draft missing = %v, want none", missing)
	}
}

func TestMissingRequiredEmptinessRules(t *testing.T) {
	fields := []Field{
		requiredField("1", "bus_route", KindSelect),
		requiredField("2", "languages", KindMultiselect),
	}
	d := NewDraft()
	d.Set("1", "")         // empty string is missing
	d.Set("2", []string{}) // empty array is missing
	missing := MissingRequired(fields, d)
	want := []string{"bus_route", "languages"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
}

func TestDisabledFieldsNeverChecked(t *testing.T) {
	fields := []Field{
		{ID: "1", Key: "hidden", Kind: KindText, Required: true, Enabled: false},
	}
	if missing := MissingRequired(fields, NewDraft()); missing != nil {
		t.Fatalf("disabled+required field reported missing: %v", missing)
	}
}

func TestOptionalFieldsMayBeOmitted(t *testing.T) {
	fields := []Field{
		{ID: "1", Key: "nickname", Kind: KindText, Required: false, Enabled: true},
	}
	if missing := MissingRequired(fields, NewDraft()); missing != nil {
		t.Fatalf("optional field reported missing: %v", missing)
	}
}
