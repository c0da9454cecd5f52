package client

import (
	"errors"
	"testing"

	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
)

func TestBatchUploadPartialSuccess(t *testing.T) {
	files := []forms.FileAttachment{
		{FileName: "one.jpg"},
		{FileName: "two.jpg"},
		{FileName: "three.jpg"},
	}
	upload := func(f forms.FileAttachment) (string, error) {
		if f.FileName == "two.jpg" {
			return "", errors.New("boom")
		}
		return "/media/" + f.FileName, nil
	}

	res := BatchUpload(files, upload)

	if len(res.Pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(res.Pending))
	}
	if res.Pending[0].FileName != "one.jpg" || res.Pending[1].FileName != "three.jpg" {
		t.Fatalf("survivor order wrong: %+v", res.Pending)
	}
	if res.DefaultFilePath != "/media/one.jpg" {
		t.Fatalf("default path = %s, want first success", res.DefaultFilePath)
	}
}

func TestBatchUploadAllFail(t *testing.T) {
	files := []forms.FileAttachment{{FileName: "a"}, {FileName: "b"}}
	res := BatchUpload(files, func(forms.FileAttachment) (string, error) {
		return "", errors.New("down")
	})
	if len(res.Pending) != 0 || res.DefaultFilePath != "" {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
