package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

type AdmissionFieldHandler struct{}

func NewAdmissionFieldHandler() *AdmissionFieldHandler { return &AdmissionFieldHandler{} }

var fieldReKey = regexp.MustCompile(`^[a-z0-9_]{1,60}$`)

func fieldsCacheKey(schoolID uint) string {
	return fmt.Sprintf("admission_fields:public:%d", schoolID)
}

type fieldPayload struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	FieldType  string `json:"field_type"`
	IsRequired bool   `json:"is_required"`
	IsEnabled  bool   `json:"is_enabled"`
	SortOrder  int    `json:"sort_order"`

	Placeholder string `json:"placeholder"`
	HelpText    string `json:"help_text"`

	// The editor sends options as one comma-separated string; each trimmed
	// token becomes a {value,label} pair with value == label.
	OptionsText string `json:"options_text"`

	ValidationRules json.RawMessage `json:"validation_rules"`
}

func (p *fieldPayload) normalize() {
	p.Key = strings.TrimSpace(strings.ToLower(p.Key))
	p.Label = strings.TrimSpace(p.Label)
	p.FieldType = strings.TrimSpace(p.FieldType)
	p.Placeholder = strings.TrimSpace(p.Placeholder)
	p.HelpText = strings.TrimSpace(p.HelpText)
}

func validateField(p *fieldPayload) map[string]string {
	errs := map[string]string{}

	if p.Key == "" {
		errs["key"] = "key is required"
	} else if !fieldReKey.MatchString(p.Key) {
		errs["key"] = "key must be lowercase letters, digits or underscores"
	}
	if p.Label == "" {
		errs["label"] = "label is required"
	} else if len(p.Label) > 120 {
		errs["label"] = "label must be at most 120 characters"
	}
	if _, ok := forms.ParseKind(p.FieldType); !ok {
		errs["field_type"] = "unknown field type"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *fieldPayload) toModel(schoolID uint) (models.AdmissionField, error) {
	kind, _ := forms.ParseKind(p.FieldType)

	var optsJSON datatypes.JSON
	if kind.TakesOptions() {
		opts := forms.ParseOptions(p.OptionsText)
		b, err := json.Marshal(opts)
		if err != nil {
			return models.AdmissionField{}, err
		}
		optsJSON = datatypes.JSON(b)
	}

	var rules datatypes.JSON
	if len(p.ValidationRules) > 0 {
		rules = datatypes.JSON(p.ValidationRules)
	}

	return models.AdmissionField{
		SchoolID:        schoolID,
		Key:             p.Key,
		Label:           p.Label,
		FieldType:       string(kind),
		IsRequired:      p.IsRequired,
		IsEnabled:       p.IsEnabled,
		SortOrder:       p.SortOrder,
		Placeholder:     p.Placeholder,
		HelpText:        p.HelpText,
		Options:         optsJSON,
		ValidationRules: rules,
	}, nil
}

// GET /admin/admission-fields
func (h *AdmissionFieldHandler) List(c echo.Context) error {
	var rows []models.AdmissionField
	if err := database.DB.
		Where("school_id = ?", currentSchoolID()).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/admission-fields
func (h *AdmissionFieldHandler) Create(c echo.Context) error {
	var p fieldPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateField(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	schoolID := currentSchoolID()
	row, err := p.toModel(schoolID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_OPTIONS"})
	}

	var dup models.AdmissionField
	if err := database.DB.Where("school_id = ? AND key = ?", schoolID, p.Key).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "KEY_EXISTS"})
	}

	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	database.CacheDel(fieldsCacheKey(schoolID))
	audit(c, "create", "admission_field", row.ID, "key="+row.Key)
	return c.JSON(http.StatusCreated, row)
}

// PUT /admin/admission-fields/:id
func (h *AdmissionFieldHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.AdmissionField
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var p fieldPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateField(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	if p.Key != existing.Key {
		var dup models.AdmissionField
		if err := database.DB.
			Where("school_id = ? AND key = ? AND id <> ?", existing.SchoolID, p.Key, existing.ID).
			First(&dup).Error; err == nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": "KEY_EXISTS"})
		}
	}

	row, err := p.toModel(existing.SchoolID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_OPTIONS"})
	}
	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt

	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	database.CacheDel(fieldsCacheKey(existing.SchoolID))
	audit(c, "update", "admission_field", row.ID, "key="+row.Key)
	return c.JSON(http.StatusOK, row)
}

// DELETE /admin/admission-fields/:id
// Stored submissions keep their captured values; only the live definition
// goes away.
func (h *AdmissionFieldHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var existing models.AdmissionField
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if err := database.DB.Delete(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	database.CacheDel(fieldsCacheKey(existing.SchoolID))
	audit(c, "delete", "admission_field", existing.ID, "key="+existing.Key)
	return c.NoContent(http.StatusNoContent)
}
