package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/config"
)

// UploadHandler is the media endpoint behind the console's library and the
// batch upload client. One file per request; batching is a client concern.
type UploadHandler struct {
	Cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{Cfg: cfg}
}

// POST /admin/uploads?kind=image|file
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "FILE_REQUIRED"})
	}

	kind := c.QueryParam("kind")
	if kind == "" {
		kind = "file"
	}
	if kind == "image" && !isImage(fh) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "NOT_AN_IMAGE"})
	}

	path, err := saveUploadFile(h.Cfg, fh, "media")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "FILE_SAVE_FAILED"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"file_path": path,
		"file_name": fh.Filename,
	})
}
