package forms

import (
	"reflect"
	"testing"
)

func TestParseOptionsTrimsAndDropsEmpties(t *testing.T) {
	got := ParseOptions(" bus , , walk,  hostel ,")
	want := []Option{
		{Value: "bus", Label: "bus"},
		{Value: "walk", Label: "walk"},
		{Value: "hostel", Label: "hostel"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseOptions = %v, want %v", got, want)
	}
}

func TestParseOptionsEmptyString(t *testing.T) {
	if got := ParseOptions("  "); got != nil {
		t.Fatalf("ParseOptions on blank input = %v, want nil", got)
	}
}

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("multiselect"); !ok || k != KindMultiselect {
		t.Fatalf("ParseKind(multiselect) = %v, %v", k, ok)
	}
	// unknown types render as text but are flagged invalid
	if k, ok := ParseKind("hologram"); ok || k != KindText {
		t.Fatalf("ParseKind(hologram) = %v, %v", k, ok)
	}
}

func TestControlForEveryKind(t *testing.T) {
	cases := map[Kind]Control{
		KindTextarea:    {Input: "textarea", Multiline: true},
		KindAddress:     {Input: "textarea", Multiline: true},
		KindSelect:      {Input: "select"},
		KindMultiselect: {Input: "checkboxes"},
		KindDate:        {Input: "date"},
		KindToggle:      {Input: "switch"},
		KindFile:        {Input: "file"},
		KindPhoto:       {Input: "file", Accept: "image/*"},
		KindNumber:      {Input: "text", InputMode: "numeric"},
		KindEmail:       {Input: "text", InputMode: "email"},
		KindPhone:       {Input: "text", InputMode: "tel"},
		KindText:        {Input: "text"},
		KindIDNumber:    {Input: "text"},
	}
	if len(cases) != len(allKinds) {
		t.Fatalf("control table covers %d kinds, union has %d", len(cases), len(allKinds))
	}
	for k, want := range cases {
		if got := ControlFor(k); got != want {
			t.Errorf("ControlFor(%s) = %+v, want %+v", k, got, want)
		}
	}
}

func TestEnabledSortedOrdering(t *testing.T) {
	fields := []Field{
		{ID: "5", Key: "e5", Enabled: true, SortOrder: 5},
		{ID: "2", Key: "e2", Enabled: true, SortOrder: 2},
		{ID: "9", Key: "off", Enabled: false, SortOrder: 1},
		{ID: "3", Key: "e3", Enabled: true, SortOrder: 3},
	}
	got := EnabledSorted(fields)
	var keys []string
	for _, f := range got {
		keys = append(keys, f.Key)
	}
	want := []string{"e2", "e3", "e5"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("EnabledSorted order = %v, want %v", keys, want)
	}
}

func TestSortFieldsStableOnTies(t *testing.T) {
	fields := []Field{
		{ID: "a", SortOrder: 1},
		{ID: "b", SortOrder: 1},
		{ID: "c", SortOrder: 0},
	}
	SortFields(fields)
	if fields[0].ID != "c" || fields[1].ID != "a" || fields[2].ID != "b" {
		t.Fatalf("tie order not stable: %v %v %v", fields[0].ID, fields[1].ID, fields[2].ID)
	}
}
