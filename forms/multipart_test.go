package forms

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"testing"
	"time"
)

func decodeBody(t *testing.T, sub *Submission) *multipart.Form {
	t.Helper()
	body, contentType, err := sub.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatal(err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form
}

func TestEncodeBaseScalars(t *testing.T) {
	birth := time.Date(2014, 3, 9, 0, 0, 0, 0, time.UTC)
	sub := &Submission{
		Base: map[string]any{
			"full_name":      "Ahmad Shah",
			"birth_date":     birth,
			"is_orphan":      true,
			"has_disability": false,
			"mother_name":    nil, // absent, must not appear at all
		},
	}
	form := decodeBody(t, sub)

	if got := form.Value["full_name"]; len(got) != 1 || got[0] != "Ahmad Shah" {
		t.Fatalf("full_name = %v", got)
	}
	if got := form.Value["birth_date"]; len(got) != 1 || got[0] != "2014-03-09" {
		t.Fatalf("birth_date = %v", got)
	}
	if got := form.Value["is_orphan"]; len(got) != 1 || got[0] != "1" {
		t.Fatalf("is_orphan = %v", got)
	}
	if got := form.Value["has_disability"]; len(got) != 1 || got[0] != "0" {
		t.Fatalf("has_disability = %v", got)
	}
	if _, ok := form.Value["mother_name"]; ok {
		t.Fatal("nil value was sent instead of omitted")
	}
}

func TestEncodeDocumentsStayAligned(t *testing.T) {
	sub := &Submission{
		Documents: []Document{
			{Type: "tazkira", File: &FileAttachment{FileName: "tazkira.jpg", Content: []byte("x")}},
			{Type: "transcript"}, // no file: must be skipped on BOTH sides
			{File: &FileAttachment{FileName: "misc.pdf", Content: []byte("y")}}, // type defaults to other
		},
	}
	form := decodeBody(t, sub)

	files := form.File["documents[]"]
	types := form.Value["document_types[]"]
	if len(files) != len(types) {
		t.Fatalf("documents[]=%d document_types[]=%d, must be equal", len(files), len(types))
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 document parts, got %d", len(files))
	}
	if files[0].Filename != "tazkira.jpg" || types[0] != "tazkira" {
		t.Fatalf("entry 0 misaligned: %s / %s", files[0].Filename, types[0])
	}
	if files[1].Filename != "misc.pdf" || types[1] != "other" {
		t.Fatalf("entry 1 misaligned: %s / %s", files[1].Filename, types[1])
	}
}

func TestEncodeExtraParts(t *testing.T) {
	fields := []Field{
		{ID: "11", Key: "bus_route", Kind: KindSelect, Enabled: true, SortOrder: 1},
		{ID: "12", Key: "vaccination_card", Kind: KindFile, Enabled: true, SortOrder: 2},
	}
	d := NewDraft()
	d.Set("11", "a")
	d.SetFile("12", FileAttachment{FileName: "card.pdf", Content: []byte("pdf"), ContentType: "application/pdf"})

	sub := &Submission{Fields: fields, Draft: d}
	form := decodeBody(t, sub)

	raw := form.Value["extra_fields"]
	if len(raw) != 1 {
		t.Fatalf("extra_fields parts = %d, want 1", len(raw))
	}
	var entries []ExtraFieldEntry
	if err := json.Unmarshal([]byte(raw[0]), &entries); err != nil {
		t.Fatalf("extra_fields not valid JSON: %v", err)
	}
	if len(entries) != 1 || entries[0].FieldID != "11" || entries[0].Value != "a" {
		t.Fatalf("extra_fields = %+v", entries)
	}

	files := form.File["extra_files[12]"]
	if len(files) != 1 || files[0].Filename != "card.pdf" {
		t.Fatalf("extra_files[12] = %+v", files)
	}
	if ct := files[0].Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("extra file content type = %s", ct)
	}
}

func TestEncodePictures(t *testing.T) {
	sub := &Submission{
		Picture:         &FileAttachment{FileName: "me.jpg", Content: []byte("a"), ContentType: "image/jpeg"},
		GuardianPicture: &FileAttachment{FileName: "dad.jpg", Content: []byte("b"), ContentType: "image/jpeg"},
	}
	form := decodeBody(t, sub)
	if len(form.File["picture"]) != 1 || len(form.File["guardian_picture"]) != 1 {
		t.Fatalf("picture parts missing: %v", form.File)
	}
}
