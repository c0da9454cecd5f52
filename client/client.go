// Package client is the Go consumer of the admissions API: it assembles
// and posts applications and drives media uploads for the console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
)

type Client struct {
	BaseURL string
	Token   string // bearer token for admin endpoints
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// apiError extracts the backend's message when present, else a generic one.
func apiError(resp *http.Response) error {
	defer resp.Body.Close()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server rejected request: %s", body.Error)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}

// FetchForm loads the public form schema: enabled fields, render-ordered.
func (c *Client) FetchForm(ctx context.Context) ([]forms.Field, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/admissions/form", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	defer resp.Body.Close()

	var body struct {
		Fields []forms.Field `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Fields, nil
}

type SubmitResult struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// Submit validates the draft's required fields, posts the assembled
// multipart body and, only on confirmed success, resets the draft so no
// dynamic values or files leak into the next application. On failure the
// draft is left untouched for retry.
func (c *Client) Submit(ctx context.Context, sub *forms.Submission) (*SubmitResult, error) {
	if sub.Draft != nil {
		if missing := forms.MissingRequired(sub.Fields, sub.Draft); len(missing) > 0 {
			return nil, fmt.Errorf("missing required fields: %v", missing)
		}
	}

	body, contentType, err := sub.Encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/admissions", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}
	defer resp.Body.Close()

	var out SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if sub.Draft != nil {
		sub.Draft.Reset()
	}
	return &out, nil
}

// UploadImage pushes one image to the media endpoint and returns its
// stored path.
func (c *Client) UploadImage(ctx context.Context, att forms.FileAttachment) (string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", att.FileName)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(att.Content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/admin/uploads?kind=image", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", apiError(resp)
	}
	defer resp.Body.Close()

	var out struct {
		FilePath string `json:"file_path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.FilePath, nil
}
