package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

type AuditHandler struct{}

func NewAuditHandler() *AuditHandler { return &AuditHandler{} }

// GET /admin/audit-logs?entity=&action=&page=&size=
func (h *AuditHandler) List(c echo.Context) error {
	entity := strings.TrimSpace(c.QueryParam("entity"))
	action := strings.TrimSpace(c.QueryParam("action"))

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 50)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}

	tx := database.DB.Model(&models.AuditLog{})
	if entity != "" {
		tx = tx.Where("entity = ?", entity)
	}
	if action != "" {
		tx = tx.Where("action = ?", action)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var rows []models.AuditLog
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  rows,
		"page":  page,
		"size":  size,
		"total": total,
	})
}
