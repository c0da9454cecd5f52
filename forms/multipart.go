package forms

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Document is one entry of the static document list. Entries without a
// file are skipped entirely during assembly so documents[] and
// document_types[] stay index-aligned.
type Document struct {
	Type string
	File *FileAttachment
}

// Submission is everything one application carries to the wire: the fixed
// base schema, the static documents, the applicant pictures and the
// dynamic draft.
type Submission struct {
	Base            map[string]any
	Picture         *FileAttachment
	GuardianPicture *FileAttachment
	Documents       []Document
	Fields          []Field
	Draft           *Draft
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, name string, f FileAttachment) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(name), quoteEscaper.Replace(f.FileName)))
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Content)
	return err
}

// formatScalar renders one base value as a form string. ok=false means the
// value is absent and must be omitted, not sent as an empty part.
func formatScalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		if t {
			return "1", true
		}
		return "0", true
	case time.Time:
		return t.Format("2006-01-02"), true
	case *time.Time:
		if t == nil {
			return "", false
		}
		return t.Format("2006-01-02"), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return fmt.Sprintf("%v", v), true
}

// Encode assembles the multipart body. Part order: base fields (sorted by
// name for determinism), pictures, aligned documents, extra_fields JSON,
// extra files.
func (s *Submission) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	keys := make([]string, 0, len(s.Base))
	for k := range s.Base {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, ok := formatScalar(s.Base[k])
		if !ok {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if s.Picture != nil {
		if err := writeFilePart(w, "picture", *s.Picture); err != nil {
			return nil, "", err
		}
	}
	if s.GuardianPicture != nil {
		if err := writeFilePart(w, "guardian_picture", *s.GuardianPicture); err != nil {
			return nil, "", err
		}
	}

	for _, doc := range s.Documents {
		if doc.File == nil {
			continue
		}
		if err := writeFilePart(w, "documents[]", *doc.File); err != nil {
			return nil, "", err
		}
		typ := doc.Type
		if typ == "" {
			typ = "other"
		}
		if err := w.WriteField("document_types[]", typ); err != nil {
			return nil, "", err
		}
	}

	if s.Draft != nil {
		extra, err := EncodeExtraFields(s.Fields, s.Draft)
		if err != nil {
			return nil, "", err
		}
		if err := w.WriteField("extra_fields", string(extra)); err != nil {
			return nil, "", err
		}
		for _, f := range EnabledSorted(s.Fields) {
			if !f.Kind.TakesFile() {
				continue
			}
			att, ok := s.Draft.Files[f.ID]
			if !ok {
				continue
			}
			if err := writeFilePart(w, "extra_files["+f.ID+"]", att); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
