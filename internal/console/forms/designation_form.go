package forms

import (
	"strconv"

	"orgconsole/internal/models"
)

// DesignationDraft holds the designation modal's working copy. Level is kept
// as the raw input string and parsed during validation, matching how the
// number input behaves.
type DesignationDraft struct {
	OrganizationID  int    `json:"organization_id" validate:"required"`
	DesignationName string `json:"designation_name" validate:"required,max=100"`
	DesignationCode string `json:"designation_code" validate:"required,max=20"`
	Level           string `json:"level" validate:"required"`
	Description     string `json:"description" validate:"max=500"`
	IsActive        bool   `json:"is_active"`
}

type DesignationForm struct {
	Existing *models.Designation
	Draft    DesignationDraft
	Errors   Errors
}

func NewDesignationForm(existing *models.Designation) *DesignationForm {
	f := &DesignationForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = DesignationDraft{Level: "1", IsActive: true}
		return f
	}
	f.Draft = DesignationDraft{
		OrganizationID:  existing.OrganizationID,
		DesignationName: existing.DesignationName,
		DesignationCode: existing.DesignationCode,
		Level:           strconv.Itoa(existing.Level),
		Description:     existing.Description,
		IsActive:        existing.IsActive,
	}
	return f
}

func (f *DesignationForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	if _, ok := f.Errors["level"]; !ok {
		if n, err := strconv.Atoi(trimmed(f.Draft.Level)); err != nil || n < 1 || n > 10 {
			f.Errors["level"] = "level must be between 1 and 10"
		}
	}
	return f.Errors
}

func (f *DesignationForm) ClearError(field string) {
	delete(f.Errors, field)
}

func (f *DesignationForm) IsEdit() bool { return f.Existing != nil }

// Payload shapes the draft: designation codes are stored uppercase and the
// level is sent as an integer.
func (f *DesignationForm) Payload() map[string]interface{} {
	level, _ := strconv.Atoi(trimmed(f.Draft.Level))
	return map[string]interface{}{
		"organization_id":  f.Draft.OrganizationID,
		"designation_name": trimmed(f.Draft.DesignationName),
		"designation_code": upperOrNil(f.Draft.DesignationCode),
		"level":            level,
		"description":      trimmed(f.Draft.Description),
		"is_active":        f.Draft.IsActive,
	}
}
