package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

// PeriodHandler manages the admission windows gating public intake.
type PeriodHandler struct{}

func NewPeriodHandler() *PeriodHandler { return &PeriodHandler{} }

var (
	perReDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	perReYear = regexp.MustCompile(`^[0-9]{4}$`)
)

type periodPayload struct {
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
	OpenDate     string `json:"open_date"`
	CloseDate    string `json:"close_date"`
	Note         string `json:"note"`
}

func (p *periodPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.AcademicYear = strings.TrimSpace(p.AcademicYear)
	p.OpenDate = strings.TrimSpace(p.OpenDate)
	p.CloseDate = strings.TrimSpace(p.CloseDate)
	p.Note = strings.TrimSpace(p.Note)
}

func validatePeriod(p *periodPayload) map[string]string {
	errs := map[string]string{}
	if p.Name == "" || len(p.Name) > 80 {
		errs["name"] = "name is required (max 80 characters)"
	}
	if !perReYear.MatchString(p.AcademicYear) {
		errs["academic_year"] = "academic year must be 4 digits"
	}
	if !perReDate.MatchString(p.OpenDate) {
		errs["open_date"] = "open date must be YYYY-MM-DD"
	}
	if !perReDate.MatchString(p.CloseDate) {
		errs["close_date"] = "close date must be YYYY-MM-DD"
	}
	if len(errs) == 0 && p.CloseDate < p.OpenDate {
		errs["close_date"] = "close date must not precede open date"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/admission-periods
func (h *PeriodHandler) List(c echo.Context) error {
	var rows []models.AdmissionPeriod
	if err := database.DB.
		Where("school_id = ?", currentSchoolID()).
		Order("open_date DESC").
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/admission-periods
func (h *PeriodHandler) Create(c echo.Context) error {
	var p periodPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validatePeriod(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	row := models.AdmissionPeriod{
		SchoolID:     currentSchoolID(),
		Name:         p.Name,
		AcademicYear: p.AcademicYear,
		OpenDate:     p.OpenDate,
		CloseDate:    p.CloseDate,
		Note:         p.Note,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, row)
}

// PUT /admin/admission-periods/:id
func (h *PeriodHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.AdmissionPeriod
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var p periodPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validatePeriod(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	existing.Name = p.Name
	existing.AcademicYear = p.AcademicYear
	existing.OpenDate = p.OpenDate
	existing.CloseDate = p.CloseDate
	existing.Note = p.Note
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /admin/admission-periods/:id
func (h *PeriodHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := database.DB.Delete(&models.AdmissionPeriod{}, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
