package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

type SchoolHandler struct{}

func NewSchoolHandler() *SchoolHandler { return &SchoolHandler{} }

type schoolPayload struct {
	SchoolCode           string `json:"school_code"`
	SchoolName           string `json:"school_name"`
	Address              string `json:"address"`
	Phone                string `json:"phone"`
	DefaultAdmissionYear string `json:"default_admission_year"`
}

var (
	schoolReCode  = regexp.MustCompile(`^[A-Za-z0-9\-]{1,20}$`)
	schoolRePhone = regexp.MustCompile(`^[0-9+\- ]{0,20}$`)
	schoolReYear  = regexp.MustCompile(`^([0-9]{4})?$`)
)

func validateSchool(p schoolPayload) map[string]string {
	errs := map[string]string{}
	if !schoolReCode.MatchString(strings.TrimSpace(p.SchoolCode)) {
		errs["school_code"] = "code must be letters, digits or dashes"
	}
	if strings.TrimSpace(p.SchoolName) == "" || len(p.SchoolName) > 100 {
		errs["school_name"] = "name is required (max 100 characters)"
	}
	if !schoolRePhone.MatchString(strings.TrimSpace(p.Phone)) {
		errs["phone"] = "invalid phone format"
	}
	if !schoolReYear.MatchString(strings.TrimSpace(p.DefaultAdmissionYear)) {
		errs["default_admission_year"] = "year must be 4 digits"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/school returns the single organization record.
func (h *SchoolHandler) Get(c echo.Context) error {
	var s models.School
	if err := database.DB.First(&s).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, s)
}

// POST /admin/school creates on first call, updates afterwards.
func (h *SchoolHandler) CreateOrUpdate(c echo.Context) error {
	var p schoolPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateSchool(p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var s models.School
	err := database.DB.First(&s).Error
	s.SchoolCode = strings.TrimSpace(p.SchoolCode)
	s.SchoolName = strings.TrimSpace(p.SchoolName)
	s.Address = strings.TrimSpace(p.Address)
	s.Phone = strings.TrimSpace(p.Phone)
	s.DefaultAdmissionYear = strings.TrimSpace(p.DefaultAdmissionYear)

	if err != nil {
		if err := database.DB.Create(&s).Error; err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, s)
	}
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
