package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

// AdmissionHandler is the admin moderation surface over submitted
// applications. Applications are never deleted here.
type AdmissionHandler struct{}

func NewAdmissionHandler() *AdmissionHandler { return &AdmissionHandler{} }

// GET /admin/admissions?status=&search=&page=&size=
func (h *AdmissionHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	search := strings.TrimSpace(c.QueryParam("search"))

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := database.DB.Model(&models.OnlineAdmission{}).Where("school_id = ?", currentSchoolID())
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where(
			"full_name ILIKE ? OR father_name ILIKE ? OR guardian_name ILIKE ? OR admission_no ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}

	var rows []models.OnlineAdmission
	if err := tx.Order("created_at DESC, id DESC").
		Limit(size).Offset((page - 1) * size).
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  rows,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// GET /admin/admissions/:id
// Full record with documents and field values, plus the status choices the
// generic editor may offer.
func (h *AdmissionHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var row models.OnlineAdmission
	if err := database.DB.
		Preload("Documents").
		Preload("FieldValues").
		First(&row, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"admission":      row,
		"status_options": models.StatusOptions(row.Status),
	})
}

type admissionPatch struct {
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
	RejectionReason *string `json:"rejection_reason"`
}

// PATCH /admin/admissions/:id
// Applies exactly the fields sent. The generic edit can never set
// accepted; that stays behind the accept action. A rejection reason left
// behind after moving away from rejected is preserved as history.
func (h *AdmissionHandler) Patch(c echo.Context) error {
	id := c.Param("id")
	var row models.OnlineAdmission
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var body admissionPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	updates, errCode := buildAdmissionUpdates(row.Status, body)
	if errCode != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": errCode})
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusOK, row)
	}

	if err := database.DB.Model(&models.OnlineAdmission{}).
		Where("id = ?", row.ID).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if s, ok := updates["status"]; ok {
		audit(c, "status_change", "admission", row.ID,
			fmt.Sprintf("%s -> %s", row.Status, s))
	}

	if err := database.DB.First(&row, "id = ?", row.ID).Error; err == nil {
		return c.JSON(http.StatusOK, row)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// buildAdmissionUpdates turns a patch body into column updates. Only the
// fields sent are touched: moving the status away from rejected leaves an
// existing rejection_reason in place as history.
func buildAdmissionUpdates(currentStatus string, body admissionPatch) (map[string]any, string) {
	updates := map[string]any{}
	if body.Status != nil {
		to := strings.TrimSpace(*body.Status)
		if to == models.StatusAccepted {
			return nil, "ACCEPT_VIA_ACTION"
		}
		if !models.CanEditStatus(currentStatus, to) {
			return nil, "INVALID_STATUS"
		}
		updates["status"] = to
	}
	if body.Notes != nil {
		updates["notes"] = strings.TrimSpace(*body.Notes)
	}
	if body.RejectionReason != nil {
		updates["rejection_reason"] = strings.TrimSpace(*body.RejectionReason)
	}
	return updates, ""
}

type acceptReq struct {
	AdmissionNo   string `json:"admission_no"`
	AdmissionYear string `json:"admission_year"`
}

// POST /admin/admissions/:id/accept
// One-way action: flips the status and creates the permanent student
// record in the same transaction. Optional number/year overrides.
func (h *AdmissionHandler) Accept(c echo.Context) error {
	id := c.Param("id")
	var row models.OnlineAdmission
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	if !models.CanAccept(row.Status) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "NOT_ACCEPTABLE_STATUS"})
	}

	var body acceptReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	year := strings.TrimSpace(body.AdmissionYear)
	if year == "" {
		year = row.AdmissionYear
	}
	if year == "" {
		var school models.School
		if err := database.DB.First(&school, "id = ?", row.SchoolID).Error; err == nil {
			year = school.DefaultAdmissionYear
		}
	}
	if year == "" {
		year = time.Now().Format("2006")
	}

	admissionNo := strings.TrimSpace(body.AdmissionNo)
	if admissionNo == "" {
		admissionNo = fmt.Sprintf("%s-%04d", year, row.ID)
	}

	var student models.Student
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		student = models.Student{
			SchoolID:      row.SchoolID,
			AdmissionNo:   admissionNo,
			AdmissionYear: year,
			FullName:      row.FullName,
			FatherName:    row.FatherName,
			Gender:        row.Gender,
			BirthDate:     row.BirthDate,
			Grade:         row.ApplyingGrade,
			Address:       row.HomeAddress,
			Phone:         row.GuardianPhone,
			Status:        "active",
			AdmissionID:   &row.ID,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		return tx.Model(&models.OnlineAdmission{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"status":         models.StatusAccepted,
				"admission_no":   admissionNo,
				"admission_year": year,
				"student_id":     student.ID,
			}).Error
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	audit(c, "accept", "admission", row.ID,
		fmt.Sprintf("admission_no=%s year=%s student_id=%d", admissionNo, year, student.ID))

	return c.JSON(http.StatusOK, map[string]any{
		"status":       models.StatusAccepted,
		"student_id":   student.ID,
		"admission_no": admissionNo,
	})
}
