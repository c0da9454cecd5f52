package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdmissionField is one operator-defined input on the public admissions form.
// Only enabled fields are served to the public form; required is enforced
// only while the field is enabled.
type AdmissionField struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	SchoolID uint `json:"school_id" gorm:"index;not null;uniqueIndex:uniq_school_field_key"`

	Key       string `json:"key" gorm:"size:60;not null;uniqueIndex:uniq_school_field_key"`
	Label     string `json:"label" gorm:"size:120;not null"`
	FieldType string `json:"field_type" gorm:"size:20;not null"` // see forms.Kind

	IsRequired bool `json:"is_required" gorm:"not null;default:false"`
	IsEnabled  bool `json:"is_enabled" gorm:"not null;default:true"`
	SortOrder  int  `json:"sort_order" gorm:"not null;default:0"`

	Placeholder string `json:"placeholder" gorm:"size:200"`
	HelpText    string `json:"help_text" gorm:"size:400"`

	// [{"value":"a","label":"a"}, ...]; meaningful for select/multiselect only.
	Options datatypes.JSON `json:"options"`
	// Reserved beyond required/type; stored untouched.
	ValidationRules datatypes.JSON `json:"validation_rules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
