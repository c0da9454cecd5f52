package models

import "time"

// Admission status pipeline. accepted is only reachable through the
// dedicated accept action, never through a generic status edit.
const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
	StatusArchived    = "archived"
)

// Document types accepted on the wire.
const (
	DocPassport         = "passport"
	DocTazkira          = "tazkira"
	DocBirthCertificate = "birth_certificate"
	DocTranscript       = "transcript"
	DocPhoto            = "photo"
	DocOther            = "other"
)

var validDocumentTypes = map[string]bool{
	DocPassport: true, DocTazkira: true, DocBirthCertificate: true,
	DocTranscript: true, DocPhoto: true, DocOther: true,
}

func ValidDocumentType(t string) bool { return validDocumentTypes[t] }

var validStatuses = map[string]bool{
	StatusSubmitted: true, StatusUnderReview: true, StatusAccepted: true,
	StatusRejected: true, StatusArchived: true,
}

func ValidStatus(s string) bool { return validStatuses[s] }

// StatusOptions lists the statuses a generic edit may move an admission to
// from the given status. accepted is never offered; it is a one-way action.
func StatusOptions(current string) []string {
	opts := []string{StatusSubmitted, StatusUnderReview, StatusRejected, StatusArchived}
	out := make([]string, 0, len(opts))
	for _, s := range opts {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}

// CanEditStatus reports whether a generic status edit from -> to is allowed.
func CanEditStatus(from, to string) bool {
	if to == StatusAccepted {
		return false
	}
	if !ValidStatus(to) {
		return false
	}
	return to != from
}

// CanAccept reports whether the accept action applies to the given status.
// Accepted blocks a second accept; archived is terminal.
func CanAccept(current string) bool {
	return current != StatusAccepted && current != StatusArchived
}

// OnlineAdmission is one public application. Created once at submission
// time; administrators only mutate status/notes/rejection_reason afterwards.
type OnlineAdmission struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	SchoolID uint `json:"school_id" gorm:"index;not null"`

	// Identity
	FullName        string     `json:"full_name" gorm:"size:100;not null"`
	FatherName      string     `json:"father_name" gorm:"size:100;not null"`
	GrandfatherName string     `json:"grandfather_name" gorm:"size:100"`
	MotherName      string     `json:"mother_name" gorm:"size:100"`
	Gender          string     `json:"gender" gorm:"size:10;not null"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	BirthYear       string     `json:"birth_year" gorm:"size:10"`
	Age             int        `json:"age" gorm:"default:0"`

	ApplyingGrade     string `json:"applying_grade" gorm:"size:30;not null"`
	AdmissionYear     string `json:"admission_year" gorm:"size:10"`
	Nationality       string `json:"nationality" gorm:"size:50"`
	PreferredLanguage string `json:"preferred_language" gorm:"size:30"`

	// Guardian
	GuardianName     string `json:"guardian_name" gorm:"size:100"`
	GuardianRelation string `json:"guardian_relation" gorm:"size:40"`
	GuardianPhone    string `json:"guardian_phone" gorm:"size:20"`
	GuardianTazkira  string `json:"guardian_tazkira" gorm:"size:40"`

	// Address
	HomeAddress     string `json:"home_address" gorm:"type:text"`
	OriginProvince  string `json:"origin_province" gorm:"size:60"`
	OriginDistrict  string `json:"origin_district" gorm:"size:60"`
	OriginVillage   string `json:"origin_village" gorm:"size:60"`
	CurrentProvince string `json:"current_province" gorm:"size:60"`
	CurrentDistrict string `json:"current_district" gorm:"size:60"`
	CurrentVillage  string `json:"current_village" gorm:"size:60"`

	// Previous school
	PreviousSchoolName    string `json:"previous_school_name" gorm:"size:120"`
	PreviousSchoolAddress string `json:"previous_school_address" gorm:"size:200"`
	LastGrade             string `json:"last_grade" gorm:"size:30"`

	// Emergency / guarantor / special cases
	EmergencyContactName  string `json:"emergency_contact_name" gorm:"size:100"`
	EmergencyContactPhone string `json:"emergency_contact_phone" gorm:"size:20"`
	GuarantorName         string `json:"guarantor_name" gorm:"size:100"`
	GuarantorPhone        string `json:"guarantor_phone" gorm:"size:20"`
	IsOrphan              bool   `json:"is_orphan" gorm:"not null;default:false"`
	HasDisability         bool   `json:"has_disability" gorm:"not null;default:false"`
	DisabilityNote        string `json:"disability_note" gorm:"size:300"`

	PictureURL         string `json:"picture_url" gorm:"size:300"`
	GuardianPictureURL string `json:"guardian_picture_url" gorm:"size:300"`

	// Moderation
	Status          string `json:"status" gorm:"size:20;not null;default:'submitted';index"`
	Notes           string `json:"notes" gorm:"type:text"`
	RejectionReason string `json:"rejection_reason" gorm:"type:text"`
	AdmissionNo     string `json:"admission_no" gorm:"size:30"`
	StudentID       *uint  `json:"student_id,omitempty"` // set by accept

	Documents   []AdmissionDocument   `json:"documents" gorm:"foreignKey:AdmissionID"`
	FieldValues []AdmissionFieldValue `json:"field_values" gorm:"foreignKey:AdmissionID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdmissionDocument struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AdmissionID  uint   `json:"admission_id" gorm:"index;not null"`
	DocumentType string `json:"document_type" gorm:"size:30;not null;default:'other'"`
	FileName     string `json:"file_name" gorm:"size:200"`
	FilePath     string `json:"file_path" gorm:"size:300;not null"`

	CreatedAt time.Time `json:"created_at"`
}

// AdmissionFieldValue captures one dynamic field at submission time.
// Either Value (inline text/JSON) or FilePath is set, never both.
type AdmissionFieldValue struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	AdmissionID uint   `json:"admission_id" gorm:"index;not null"`
	FieldID     uint   `json:"field_id" gorm:"index;not null"`
	Value       string `json:"value" gorm:"type:text"`
	FilePath    string `json:"file_path" gorm:"size:300"`

	CreatedAt time.Time `json:"created_at"`
}
