package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /admin/dashboard/summary
// Admission counts per pipeline status plus the student total.
func (h *DashboardHandler) Summary(c echo.Context) error {
	schoolID := currentSchoolID()

	type bucket struct {
		Status string
		N      int64
	}
	var buckets []bucket
	if err := database.DB.Model(&models.OnlineAdmission{}).
		Select("status, count(*) as n").
		Where("school_id = ?", schoolID).
		Group("status").
		Scan(&buckets).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	counts := map[string]int64{
		models.StatusSubmitted:   0,
		models.StatusUnderReview: 0,
		models.StatusAccepted:    0,
		models.StatusRejected:    0,
		models.StatusArchived:    0,
	}
	var total int64
	for _, b := range buckets {
		counts[b.Status] = b.N
		total += b.N
	}

	var students int64
	if err := database.DB.Model(&models.Student{}).
		Where("school_id = ?", schoolID).Count(&students).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"admissions": counts,
		"total":      total,
		"students":   students,
	})
}
