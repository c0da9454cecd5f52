package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
)

func testSubmission() *forms.Submission {
	d := forms.NewDraft()
	d.Set("11", "a")
	d.SetFile("13", forms.FileAttachment{FileName: "card.pdf", Content: []byte("pdf")})
	return &forms.Submission{
		Base: map[string]any{"full_name": "Ahmad Shah", "father_name": "Wali"},
		Fields: []forms.Field{
			{ID: "11", Key: "bus_route", Kind: forms.KindSelect, Required: true, Enabled: true},
			{ID: "13", Key: "vaccination_card", Kind: forms.KindFile, Required: true, Enabled: true},
		},
		Draft: d,
	}
}

func TestSubmitResetsDraftOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admissions" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"status":"submitted"}`))
	}))
	defer srv.Close()

	sub := testSubmission()
	c := New(srv.URL)
	res, err := c.Submit(context.Background(), sub)
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 7 || res.Status != "submitted" {
		t.Fatalf("result = %+v", res)
	}
	if len(sub.Draft.Values) != 0 || len(sub.Draft.Files) != 0 {
		t.Fatal("draft not reset after confirmed success")
	}
}

func TestSubmitKeepsDraftOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"ADMISSIONS_CLOSED"}`))
	}))
	defer srv.Close()

	sub := testSubmission()
	c := New(srv.URL)
	_, err := c.Submit(context.Background(), sub)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ADMISSIONS_CLOSED") {
		t.Fatalf("backend message not surfaced: %v", err)
	}
	// entered data survives for retry
	if len(sub.Draft.Values) != 1 || len(sub.Draft.Files) != 1 {
		t.Fatal("draft lost on failure")
	}
}

func TestSubmitBlocksBeforeNetworkWhenRequiredMissing(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	sub := testSubmission()
	sub.Draft.Reset() // nothing filled in

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), sub)
	if err == nil {
		t.Fatal("expected aggregate validation error")
	}
	if !strings.Contains(err.Error(), "bus_route") || !strings.Contains(err.Error(), "vaccination_card") {
		t.Fatalf("aggregate error incomplete: %v", err)
	}
	if calls != 0 {
		t.Fatalf("network was called %d times, want 0", calls)
	}
}
