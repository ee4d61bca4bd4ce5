package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Resume field keys produced by the document-field-extraction service.
const (
	FieldFullName               = "full_name"
	FieldEmail                  = "email"
	FieldPhoneNumber            = "phone_number"
	FieldTechnicalSkills        = "technical_skills"
	FieldSoftSkills             = "soft_skills"
	FieldCertifications         = "certifications"
	FieldEducation              = "education"
	FieldProfessionalExperience = "professional_experience"
	FieldRawText                = "raw_text"
)

// FieldValue is an optional extracted value. The zero value is absent.
type FieldValue struct {
	raw     any
	present bool
}

// Value wraps v as a present FieldValue. A nil v is absent.
func Value(v any) FieldValue {
	if v == nil {
		return FieldValue{}
	}
	return FieldValue{raw: v, present: true}
}

// Absent returns an empty FieldValue.
func Absent() FieldValue {
	return FieldValue{}
}

func (f FieldValue) Present() bool {
	return f.present
}

// Raw returns the decoded value: string, float64, bool, []any or map[string]any.
func (f FieldValue) Raw() any {
	return f.raw
}

// Text flattens the value into plain text. Absent values yield "".
func (f FieldValue) Text() string {
	if !f.present {
		return ""
	}
	return strings.TrimSpace(flatten(f.raw))
}

// Object returns the value as a nested object, if it is one.
func (f FieldValue) Object() (map[string]any, bool) {
	if !f.present {
		return nil, false
	}
	obj, ok := f.raw.(map[string]any)
	return obj, ok
}

// Get returns the named member of an object value; absent otherwise.
func (f FieldValue) Get(key string) FieldValue {
	obj, ok := f.Object()
	if !ok {
		return Absent()
	}
	return Value(obj[key])
}

func (f FieldValue) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

func (f *FieldValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Absent()
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode field value: %w", err)
	}

	*f = Value(v)
	return nil
}

func flatten(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(flatten(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := strings.TrimSpace(flatten(val[k])); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Field holds every value extracted for one key. A scalar is a one-element list.
type Field []FieldValue

// Texts returns the non-empty flattened text of each value.
func (f Field) Texts() []string {
	out := make([]string, 0, len(f))
	for _, v := range f {
		if s := v.Text(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (f *Field) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []FieldValue
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return err
		}
		*f = values
		return nil
	}

	var single FieldValue
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	if single.Present() {
		*f = Field{single}
	} else {
		*f = nil
	}
	return nil
}

// ResumeFields maps field names to extracted values. Every key is optional.
type ResumeFields map[string]Field

// Values returns the field for key, or nil when it is missing.
func (r ResumeFields) Values(key string) Field {
	if r == nil {
		return nil
	}
	return r[key]
}

// Text joins every value of key with ", ".
func (r ResumeFields) Text(key string) string {
	return strings.Join(r.Values(key).Texts(), ", ")
}

// Experience resolves the professional_experience list into entries.
func (r ResumeFields) Experience() []ExperienceEntry {
	values := r.Values(FieldProfessionalExperience)
	entries := make([]ExperienceEntry, 0, len(values))
	for _, v := range values {
		if _, ok := v.Object(); !ok {
			continue
		}
		entries = append(entries, ExperienceEntry{
			StartYear:  v.Get("start_year"),
			StartMonth: v.Get("start_month"),
			EndYear:    v.Get("end_year"),
			EndMonth:   v.Get("end_month"),
			Title:      v.Get("title").Text(),
			Company:    v.Get("company").Text(),
		})
	}
	return entries
}

// ExperienceEntry is one employment span. Any date part may be absent or a
// sentinel such as "present".
type ExperienceEntry struct {
	StartYear  FieldValue
	StartMonth FieldValue
	EndYear    FieldValue
	EndMonth   FieldValue
	Title      string
	Company    string
}
