package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

var (
	stuReAdmissionNo = regexp.MustCompile(`^[A-Za-z0-9\-]{1,30}$`)
	stuReYear        = regexp.MustCompile(`^[0-9]{4}$`)
	stuReName        = regexp.MustCompile(`^[\p{L}\s.]{1,100}$`)
	stuRePhone       = regexp.MustCompile(`^[0-9+\- ]{0,20}$`)
)

type studentPayload struct {
	AdmissionNo   string `json:"admission_no"`
	AdmissionYear string `json:"admission_year"`
	FullName      string `json:"full_name"`
	FatherName    string `json:"father_name"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birth_date"` // YYYY-MM-DD or empty
	Grade         string `json:"grade"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
}

func (p *studentPayload) normalize() {
	p.AdmissionNo = strings.TrimSpace(p.AdmissionNo)
	p.AdmissionYear = strings.TrimSpace(p.AdmissionYear)
	p.FullName = strings.Join(strings.Fields(p.FullName), " ")
	p.FatherName = strings.Join(strings.Fields(p.FatherName), " ")
	p.Gender = strings.TrimSpace(p.Gender)
	p.BirthDate = strings.TrimSpace(p.BirthDate)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Status = strings.TrimSpace(p.Status)
}

func validateStudent(p *studentPayload) map[string]string {
	errs := map[string]string{}

	if !stuReAdmissionNo.MatchString(p.AdmissionNo) {
		errs["admission_no"] = "admission number must be letters, digits or dashes"
	}
	if !stuReYear.MatchString(p.AdmissionYear) {
		errs["admission_year"] = "admission year must be 4 digits"
	}
	if p.FullName == "" || !stuReName.MatchString(p.FullName) {
		errs["full_name"] = "name must be letters only"
	}
	if p.FatherName == "" || !stuReName.MatchString(p.FatherName) {
		errs["father_name"] = "father name must be letters only"
	}
	if p.Gender != "male" && p.Gender != "female" {
		errs["gender"] = "gender must be male or female"
	}
	if p.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", p.BirthDate); err != nil {
			errs["birth_date"] = "birth date must be YYYY-MM-DD or empty"
		}
	}
	if p.Grade == "" {
		errs["grade"] = "grade is required"
	}
	if !stuRePhone.MatchString(p.Phone) {
		errs["phone"] = "invalid phone format"
	}
	validStatuses := map[string]bool{"active": true, "left": true, "suspended": true}
	if !validStatuses[p.Status] {
		errs["status"] = "status must be active, left or suspended"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *studentPayload) apply(s *models.Student) {
	if p.BirthDate != "" {
		if b, err := time.Parse("2006-01-02", p.BirthDate); err == nil {
			s.BirthDate = &b
		}
	}
	s.AdmissionNo = p.AdmissionNo
	s.AdmissionYear = p.AdmissionYear
	s.FullName = p.FullName
	s.FatherName = p.FatherName
	s.Gender = p.Gender
	s.Grade = p.Grade
	s.Address = p.Address
	s.Phone = p.Phone
	s.Status = p.Status
}

// GET /admin/students?q=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}

	tx := database.DB.Model(&models.Student{}).Where("school_id = ?", currentSchoolID())
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("admission_no ILIKE ? OR full_name ILIKE ? OR father_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Student
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// GET /admin/students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var s models.Student
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// POST /admin/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	s := models.Student{SchoolID: currentSchoolID()}
	p.apply(&s)
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /admin/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	p.apply(&existing)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /admin/students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := database.DB.Delete(&models.Student{}, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
