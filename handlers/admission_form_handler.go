package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/config"
	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/forms"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

// AdmissionFormHandler serves the public side: the form schema and the
// multipart submission intake.
type AdmissionFormHandler struct {
	Cfg *config.Config
}

func NewAdmissionFormHandler(cfg *config.Config) *AdmissionFormHandler {
	return &AdmissionFormHandler{Cfg: cfg}
}

// GET /admissions/form
// Enabled fields only, sorted by sort_order ascending, one control
// descriptor per field. Read-through cached; registry writes invalidate.
func (h *AdmissionFormHandler) GetForm(c echo.Context) error {
	schoolID := currentSchoolID()
	key := fieldsCacheKey(schoolID)

	if cached := database.CacheGet(key); cached != "" {
		return c.JSONBlob(http.StatusOK, []byte(cached))
	}

	fields, err := loadFormFields(schoolID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	enabled := forms.EnabledSorted(fields)

	body, err := json.Marshal(map[string]any{"fields": enabled})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "ENCODE_FAILED"})
	}
	database.CacheSet(key, string(body))
	return c.JSONBlob(http.StatusOK, body)
}

// Fixed base schema of the application. Dynamic fields ride alongside in
// extra_fields / extra_files parts.
type admissionPayload struct {
	FullName        string `form:"full_name" validate:"required,max=100"`
	FatherName      string `form:"father_name" validate:"required,max=100"`
	GrandfatherName string `form:"grandfather_name" validate:"max=100"`
	MotherName      string `form:"mother_name" validate:"max=100"`
	Gender          string `form:"gender" validate:"required,oneof=male female"`
	BirthDate       string `form:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	BirthYear       string `form:"birth_year" validate:"max=10"`
	Age             int    `form:"age" validate:"gte=0,lte=120"`

	ApplyingGrade     string `form:"applying_grade" validate:"required,max=30"`
	AdmissionYear     string `form:"admission_year" validate:"max=10"`
	Nationality       string `form:"nationality" validate:"max=50"`
	PreferredLanguage string `form:"preferred_language" validate:"max=30"`

	GuardianName     string `form:"guardian_name" validate:"max=100"`
	GuardianRelation string `form:"guardian_relation" validate:"max=40"`
	GuardianPhone    string `form:"guardian_phone" validate:"max=20"`
	GuardianTazkira  string `form:"guardian_tazkira" validate:"max=40"`

	HomeAddress     string `form:"home_address"`
	OriginProvince  string `form:"origin_province" validate:"max=60"`
	OriginDistrict  string `form:"origin_district" validate:"max=60"`
	OriginVillage   string `form:"origin_village" validate:"max=60"`
	CurrentProvince string `form:"current_province" validate:"max=60"`
	CurrentDistrict string `form:"current_district" validate:"max=60"`
	CurrentVillage  string `form:"current_village" validate:"max=60"`

	PreviousSchoolName    string `form:"previous_school_name" validate:"max=120"`
	PreviousSchoolAddress string `form:"previous_school_address" validate:"max=200"`
	LastGrade             string `form:"last_grade" validate:"max=30"`

	EmergencyContactName  string `form:"emergency_contact_name" validate:"max=100"`
	EmergencyContactPhone string `form:"emergency_contact_phone" validate:"max=20"`
	GuarantorName         string `form:"guarantor_name" validate:"max=100"`
	GuarantorPhone        string `form:"guarantor_phone" validate:"max=20"`
	IsOrphan              string `form:"is_orphan"`      // "1"/"0"
	HasDisability         string `form:"has_disability"` // "1"/"0"
	DisabilityNote        string `form:"disability_note" validate:"max=300"`
}

// POST /admissions
func (h *AdmissionFormHandler) Submit(c echo.Context) error {
	schoolID := currentSchoolID()

	if open, err := admissionsOpen(schoolID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	} else if !open {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "ADMISSIONS_CLOSED"})
	}

	var p admissionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := validator.New().Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_MULTIPART"})
	}

	fields, err := loadFormFields(schoolID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	fieldByID := map[string]forms.Field{}
	for _, f := range fields {
		fieldByID[f.ID] = f
	}

	draft, badEntry := parseExtraParts(form, fieldByID)
	if badEntry != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_EXTRA_FIELDS", "detail": badEntry})
	}

	// The aggregate required gate: nothing is persisted when any enabled
	// required field is missing.
	if missing := forms.MissingRequired(fields, draft); len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "MISSING_REQUIRED_FIELDS",
			"fields": missing,
		})
	}

	docFiles := form.File["documents[]"]
	docTypes := form.Value["document_types[]"]
	if len(docTypes) > 0 && len(docTypes) != len(docFiles) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DOCUMENT_TYPES_MISMATCH"})
	}
	for _, t := range docTypes {
		if !models.ValidDocumentType(t) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DOCUMENT_TYPE", "type": t})
		}
	}

	row := p.toModel(schoolID)

	// Applicant pictures are image-only.
	if fh := firstFile(form, "picture"); fh != nil {
		if !isImage(fh) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "PICTURE_NOT_IMAGE"})
		}
		path, err := h.saveUpload(fh, "pictures")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "FILE_SAVE_FAILED"})
		}
		row.PictureURL = path
	}
	if fh := firstFile(form, "guardian_picture"); fh != nil {
		if !isImage(fh) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "PICTURE_NOT_IMAGE"})
		}
		path, err := h.saveUpload(fh, "pictures")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "FILE_SAVE_FAILED"})
		}
		row.GuardianPictureURL = path
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for i, fh := range docFiles {
			typ := models.DocOther
			if i < len(docTypes) {
				typ = docTypes[i]
			}
			path, err := h.saveUpload(fh, "documents")
			if err != nil {
				return err
			}
			doc := models.AdmissionDocument{
				AdmissionID:  row.ID,
				DocumentType: typ,
				FileName:     fh.Filename,
				FilePath:     path,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		}

		for id, f := range fieldByID {
			fid64, _ := strconv.ParseUint(id, 10, 64)

			if f.Kind.TakesFile() {
				fh := firstFile(form, "extra_files["+id+"]")
				if fh == nil {
					continue
				}
				if f.Kind == forms.KindPhoto && !isImage(fh) {
					return fmt.Errorf("photo field %s: not an image", f.Key)
				}
				path, err := h.saveUpload(fh, "extra")
				if err != nil {
					return err
				}
				fv := models.AdmissionFieldValue{
					AdmissionID: row.ID,
					FieldID:     uint(fid64),
					FilePath:    path,
				}
				if err := tx.Create(&fv).Error; err != nil {
					return err
				}
				continue
			}

			v, ok := draft.Values[id]
			if forms.ValueEmpty(v, ok) {
				continue
			}
			stored, err := storedValue(v)
			if err != nil {
				return err
			}
			fv := models.AdmissionFieldValue{
				AdmissionID: row.ID,
				FieldID:     uint(fid64),
				Value:       stored,
			}
			if err := tx.Create(&fv).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]any{"id": row.ID, "status": row.Status})
}

// admissionsOpen: intake is gated by periods only once at least one is
// defined; a fresh install with none accepts year-round.
func admissionsOpen(schoolID uint) (bool, error) {
	var total int64
	if err := database.DB.Model(&models.AdmissionPeriod{}).
		Where("school_id = ?", schoolID).Count(&total).Error; err != nil {
		return false, err
	}
	if total == 0 {
		return true, nil
	}
	today := time.Now().Format("2006-01-02")
	var open int64
	if err := database.DB.Model(&models.AdmissionPeriod{}).
		Where("school_id = ? AND open_date <= ? AND close_date >= ?", schoolID, today, today).
		Count(&open).Error; err != nil {
		return false, err
	}
	return open > 0, nil
}

// parseExtraParts reads the extra_fields JSON part and the extra_files
// parts into a draft. Unknown field ids are dropped; a malformed
// extra_fields part aborts with its description.
func parseExtraParts(form *multipart.Form, fieldByID map[string]forms.Field) (*forms.Draft, string) {
	draft := forms.NewDraft()

	if raw := form.Value["extra_fields"]; len(raw) > 0 && strings.TrimSpace(raw[0]) != "" {
		var entries []forms.ExtraFieldEntry
		if err := json.Unmarshal([]byte(raw[0]), &entries); err != nil {
			return nil, "extra_fields is not a JSON array"
		}
		for _, e := range entries {
			if _, known := fieldByID[e.FieldID]; !known {
				continue
			}
			switch v := e.Value.(type) {
			case string:
				draft.Set(e.FieldID, v)
			case []any:
				arr := make([]string, 0, len(v))
				for _, item := range v {
					s, ok := item.(string)
					if !ok {
						return nil, "non-string entry in multiselect value for field " + e.FieldID
					}
					arr = append(arr, s)
				}
				draft.Set(e.FieldID, arr)
			case bool:
				// Tolerated: the contract stringifies booleans, but a raw
				// bool is unambiguous.
				draft.Set(e.FieldID, v)
			case nil:
				// absent; leave unset
			default:
				return nil, "unsupported value shape for field " + e.FieldID
			}
		}
	}

	for name, fhs := range form.File {
		if !strings.HasPrefix(name, "extra_files[") || !strings.HasSuffix(name, "]") {
			continue
		}
		id := name[len("extra_files[") : len(name)-1]
		if _, known := fieldByID[id]; !known {
			continue
		}
		if len(fhs) > 0 {
			draft.SetFile(id, forms.FileAttachment{FileName: fhs[0].Filename})
		}
	}

	return draft, ""
}

// storedValue flattens a draft value into the text column: arrays as a
// JSON array, booleans as "true"/"false", strings untouched.
func storedValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []string:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	}
	return fmt.Sprintf("%v", v), nil
}

func firstFile(form *multipart.Form, name string) *multipart.FileHeader {
	if fhs := form.File[name]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

func isImage(fh *multipart.FileHeader) bool {
	return strings.HasPrefix(fh.Header.Get("Content-Type"), "image/")
}

func (h *AdmissionFormHandler) saveUpload(fh *multipart.FileHeader, subdir string) (string, error) {
	return saveUploadFile(h.Cfg, fh, filepath.Join("admissions", subdir))
}

// saveUploadFile writes one uploaded file under the upload dir with a uuid
// name, returning the stored relative path.
func saveUploadFile(cfg *config.Config, fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > cfg.MaxUploadMB*1024*1024 {
		return "", fmt.Errorf("file %s exceeds %dMB", fh.Filename, cfg.MaxUploadMB)
	}
	dir := filepath.Join(cfg.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return "", err
	}
	return dst, nil
}

func (p *admissionPayload) toModel(schoolID uint) models.OnlineAdmission {
	var birth *time.Time
	if p.BirthDate != "" {
		if b, err := time.Parse("2006-01-02", p.BirthDate); err == nil {
			birth = &b
		}
	}
	return models.OnlineAdmission{
		SchoolID:        schoolID,
		FullName:        strings.TrimSpace(p.FullName),
		FatherName:      strings.TrimSpace(p.FatherName),
		GrandfatherName: strings.TrimSpace(p.GrandfatherName),
		MotherName:      strings.TrimSpace(p.MotherName),
		Gender:          p.Gender,
		BirthDate:       birth,
		BirthYear:       p.BirthYear,
		Age:             p.Age,

		ApplyingGrade:     p.ApplyingGrade,
		AdmissionYear:     p.AdmissionYear,
		Nationality:       p.Nationality,
		PreferredLanguage: p.PreferredLanguage,

		GuardianName:     p.GuardianName,
		GuardianRelation: p.GuardianRelation,
		GuardianPhone:    p.GuardianPhone,
		GuardianTazkira:  p.GuardianTazkira,

		HomeAddress:     p.HomeAddress,
		OriginProvince:  p.OriginProvince,
		OriginDistrict:  p.OriginDistrict,
		OriginVillage:   p.OriginVillage,
		CurrentProvince: p.CurrentProvince,
		CurrentDistrict: p.CurrentDistrict,
		CurrentVillage:  p.CurrentVillage,

		PreviousSchoolName:    p.PreviousSchoolName,
		PreviousSchoolAddress: p.PreviousSchoolAddress,
		LastGrade:             p.LastGrade,

		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		GuarantorName:         p.GuarantorName,
		GuarantorPhone:        p.GuarantorPhone,
		IsOrphan:              p.IsOrphan == "1",
		HasDisability:         p.HasDisability == "1",
		DisabilityNote:        p.DisabilityNote,

		Status: models.StatusSubmitted,
	}
}
