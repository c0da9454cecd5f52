package models

import "time"

// Student is the permanent record created when an admission is accepted.
type Student struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SchoolID uint `gorm:"index;not null" json:"school_id"`

	AdmissionNo   string `gorm:"size:30;uniqueIndex;not null" json:"admission_no"`
	AdmissionYear string `gorm:"size:10;not null" json:"admission_year"`

	FullName   string     `gorm:"size:100;not null" json:"full_name"`
	FatherName string     `gorm:"size:100;not null" json:"father_name"`
	Gender     string     `gorm:"size:10;not null" json:"gender"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`

	Grade   string `gorm:"size:30;not null" json:"grade"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Status  string `gorm:"size:20;not null;default:'active'" json:"status"` // active|left|suspended

	// Back-reference to the admission this record came from, if any.
	AdmissionID *uint `gorm:"uniqueIndex" json:"admission_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
