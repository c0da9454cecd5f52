package handlers

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

// string -> int with a fallback for unparsable input
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// user_id as set by the auth middleware
func getUserID(c echo.Context) (uint, bool) {
	switch v := c.Get("user_id").(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

func getUserName(c echo.Context) string {
	name, _ := c.Get("name").(string)
	return name
}

// The console runs single-organization: scope everything to the first
// school row. 0 until initial setup creates one.
func currentSchoolID() uint {
	var s models.School
	if err := database.DB.Select("id").First(&s).Error; err != nil {
		return 0
	}
	return s.ID
}

// Append-only audit trail; failures are logged, never surfaced.
func audit(c echo.Context, action, entity string, entityID uint, detail string) {
	uid, _ := getUserID(c)
	row := models.AuditLog{
		ActorID:   uid,
		ActorName: getUserName(c),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		log.Printf("[audit] write failed: %v", err)
	}
}

// toFormField converts a stored definition into the renderer's view.
func toFormField(m models.AdmissionField) forms.Field {
	kind, _ := forms.ParseKind(m.FieldType)
	var opts []forms.Option
	if len(m.Options) > 0 {
		if err := json.Unmarshal(m.Options, &opts); err != nil {
			log.Printf("[fields] bad options JSON on field %d: %v", m.ID, err)
		}
	}
	return forms.Field{
		ID:          strconv.FormatUint(uint64(m.ID), 10),
		Key:         m.Key,
		Label:       m.Label,
		Kind:        kind,
		Required:    m.IsRequired,
		Enabled:     m.IsEnabled,
		SortOrder:   m.SortOrder,
		Placeholder: m.Placeholder,
		HelpText:    m.HelpText,
		Options:     opts,
		Control:     forms.ControlFor(kind),
	}
}

func loadFormFields(schoolID uint) ([]forms.Field, error) {
	var rows []models.AdmissionField
	if err := database.DB.
		Where("school_id = ?", schoolID).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]forms.Field, 0, len(rows))
	for _, r := range rows {
		out = append(out, toFormField(r))
	}
	return out, nil
}
