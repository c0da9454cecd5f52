package handlers

import (
	"bytes"
	"mime/multipart"
	"reflect"
	"testing"

	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
)

func buildForm(t *testing.T, build func(w *multipart.Writer)) *multipart.Form {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	build(w)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form
}

func testFieldMap() map[string]forms.Field {
	return map[string]forms.Field{
		"11": {ID: "11", Key: "bus_route", Kind: forms.KindSelect, Enabled: true},
		"12": {ID: "12", Key: "languages", Kind: forms.KindMultiselect, Enabled: true},
		"13": {ID: "13", Key: "vaccination_card", Kind: forms.KindFile, Enabled: true},
	}
}

func TestParseExtraPartsValues(t *testing.T) {
	form := buildForm(t, func(w *multipart.Writer) {
		_ = w.WriteField("extra_fields",
			`[{"field_id":"11","value":"a"},{"field_id":"12","value":["dari","pashto"]},{"field_id":"99","value":"ghost"}]`)
	})

	draft, bad := parseExtraParts(form, testFieldMap())
	if bad != "" {
		t.Fatalf("unexpected parse error: %s", bad)
	}
	if draft.Values["11"] != "a" {
		t.Fatalf("select value = %v", draft.Values["11"])
	}
	if got, _ := draft.Values["12"].([]string); !reflect.DeepEqual(got, []string{"dari", "pashto"}) {
		t.Fatalf("multiselect value = %v", draft.Values["12"])
	}
	// unknown field ids are dropped, not stored
	if _, ok := draft.Values["99"]; ok {
		t.Fatal("unknown field id captured")
	}
}

func TestParseExtraPartsFiles(t *testing.T) {
	form := buildForm(t, func(w *multipart.Writer) {
		fw, _ := w.CreateFormFile("extra_files[13]", "card.pdf")
		_, _ = fw.Write([]byte("pdf"))
		fw2, _ := w.CreateFormFile("extra_files[99]", "ghost.pdf")
		_, _ = fw2.Write([]byte("x"))
	})

	draft, bad := parseExtraParts(form, testFieldMap())
	if bad != "" {
		t.Fatalf("unexpected parse error: %s", bad)
	}
	if att, ok := draft.Files["13"]; !ok || att.FileName != "card.pdf" {
		t.Fatalf("extra file not captured: %+v", draft.Files)
	}
	if _, ok := draft.Files["99"]; ok {
		t.Fatal("unknown extra file captured")
	}
}

func TestParseExtraPartsMalformedJSON(t *testing.T) {
	form := buildForm(t, func(w *multipart.Writer) {
		_ = w.WriteField("extra_fields", `{"not":"an array"}`)
	})
	if _, bad := parseExtraParts(form, testFieldMap()); bad == "" {
		t.Fatal("malformed extra_fields accepted")
	}
}

func TestParseExtraPartsBadMultiselectEntry(t *testing.T) {
	form := buildForm(t, func(w *multipart.Writer) {
		_ = w.WriteField("extra_fields", `[{"field_id":"12","value":[1,2]}]`)
	})
	if _, bad := parseExtraParts(form, testFieldMap()); bad == "" {
		t.Fatal("non-string multiselect entries accepted")
	}
}

func TestParseExtraPartsRequiredGateIntegration(t *testing.T) {
	// the parsed draft feeds the same gate the client uses
	fields := []forms.Field{
		{ID: "11", Key: "bus_route", Kind: forms.KindSelect, Required: true, Enabled: true},
		{ID: "13", Key: "vaccination_card", Kind: forms.KindFile, Required: true, Enabled: true},
	}
	form := buildForm(t, func(w *multipart.Writer) {
		_ = w.WriteField("extra_fields", `[{"field_id":"11","value":"a"}]`)
	})
	draft, bad := parseExtraParts(form, testFieldMap())
	if bad != "" {
		t.Fatal(bad)
	}
	missing := forms.MissingRequired(fields, draft)
	if !reflect.DeepEqual(missing, []string{"vaccination_card"}) {
		t.Fatalf("missing = %v, want only the file field", missing)
	}
}

func TestStoredValueShapes(t *testing.T) {
	if v, _ := storedValue("plain"); v != "plain" {
		t.Fatalf("string = %q", v)
	}
	if v, _ := storedValue([]string{"a", "b"}); v != `["a","b"]` {
		t.Fatalf("array = %q", v)
	}
	if v, _ := storedValue(true); v != "true" {
		t.Fatalf("bool = %q", v)
	}
	if v, _ := storedValue(false); v != "false" {
		t.Fatalf("bool = %q", v)
	}
}
