package models

import "time"

// School is the organization behind the console. Field definitions and
// admissions hang off it; in practice a deployment holds one row.
type School struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SchoolCode string `gorm:"uniqueIndex;size:20;not null" json:"school_code"`
	SchoolName string `gorm:"size:100;not null" json:"school_name"`
	Address    string `gorm:"size:255" json:"address"`
	Phone      string `gorm:"size:20" json:"phone"`

	// Default year stamped on accepted admissions when no override is given.
	DefaultAdmissionYear string `gorm:"size:10" json:"default_admission_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
