package client

import (
	"context"
	"log"

	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
)

// UploadFunc pushes one file and returns its stored path.
type UploadFunc func(forms.FileAttachment) (string, error)

// PendingUpload is one successfully uploaded file awaiting attachment.
type PendingUpload struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

// BatchResult is the outcome of a multi-file upload. DefaultFilePath is
// the first successful upload's path.
type BatchResult struct {
	Pending         []PendingUpload
	DefaultFilePath string
}

// BatchUpload pushes files one at a time. A failure drops that file and
// moves on: earlier uploads stay recorded, later files still get their
// turn. The upload primitive has already surfaced the error to the user,
// so it is only logged here.
func BatchUpload(files []forms.FileAttachment, upload UploadFunc) BatchResult {
	var res BatchResult
	for _, f := range files {
		path, err := upload(f)
		if err != nil {
			log.Printf("[upload] %s failed, skipping: %v", f.FileName, err)
			continue
		}
		if res.DefaultFilePath == "" {
			res.DefaultFilePath = path
		}
		res.Pending = append(res.Pending, PendingUpload{FileName: f.FileName, FilePath: path})
	}
	return res
}

// UploadImages is BatchUpload over the media endpoint.
func (c *Client) UploadImages(ctx context.Context, files []forms.FileAttachment) BatchResult {
	return BatchUpload(files, func(f forms.FileAttachment) (string, error) {
		return c.UploadImage(ctx, f)
	})
}
