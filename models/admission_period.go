package models

import "time"

// AdmissionPeriod is a window during which the public form accepts
// submissions. Dates are YYYY-MM-DD strings, inclusive on both ends.
type AdmissionPeriod struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	SchoolID     uint   `json:"school_id" gorm:"index;not null"`
	Name         string `json:"name" gorm:"size:80;not null"`
	AcademicYear string `json:"academic_year" gorm:"size:10;not null"`
	OpenDate     string `json:"open_date" gorm:"type:date;not null"`
	CloseDate    string `json:"close_date" gorm:"type:date;not null"`
	Note         string `json:"note" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether the given YYYY-MM-DD date falls in the window.
// ISO dates order lexicographically, so plain string compare is enough.
func (p *AdmissionPeriod) Contains(date string) bool {
	return p.OpenDate <= date && date <= p.CloseDate
}
