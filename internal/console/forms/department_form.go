package forms

import "orgconsole/internal/models"

// DepartmentDraft is the department modal's working copy. Parent and head
// are optional; 0 means unselected.
type DepartmentDraft struct {
	OrganizationID     int    `json:"organization_id" validate:"required"`
	SiteID             int    `json:"site_id" validate:"required"`
	DepartmentName     string `json:"department_name" validate:"required,max=100"`
	DepartmentCode     string `json:"department_code" validate:"required,max=20"`
	ParentDepartmentID int    `json:"parent_department_id"`
	HeadEmployeeID     int    `json:"head_employee_id"`
	Description        string `json:"description" validate:"max=500"`
	IsActive           bool   `json:"is_active"`
}

type DepartmentForm struct {
	Existing *models.Department
	Draft    DepartmentDraft
	Errors   Errors
}

func NewDepartmentForm(existing *models.Department) *DepartmentForm {
	f := &DepartmentForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = DepartmentDraft{IsActive: true}
		return f
	}
	f.Draft = DepartmentDraft{
		OrganizationID:     existing.OrganizationID,
		SiteID:             existing.SiteID,
		DepartmentName:     existing.DepartmentName,
		DepartmentCode:     existing.DepartmentCode,
		ParentDepartmentID: intDefault(existing.ParentDepartmentID),
		HeadEmployeeID:     intDefault(existing.HeadEmployeeID),
		Description:        existing.Description,
		IsActive:           existing.IsActive,
	}
	return f
}

func (f *DepartmentForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	// A department cannot be its own parent. The option list already
	// excludes the record, this is the backstop.
	if f.Existing != nil && f.Draft.ParentDepartmentID == f.Existing.ID {
		f.Errors["parent_department_id"] = "parent_department_id cannot be the department itself"
	}
	return f.Errors
}

func (f *DepartmentForm) ClearError(field string) {
	delete(f.Errors, field)
}

func (f *DepartmentForm) IsEdit() bool { return f.Existing != nil }

// ParentOptions filters the selectable parents: the record being edited is
// excluded so it can never become its own ancestor root.
func (f *DepartmentForm) ParentOptions(departments []models.Department) []models.Department {
	if f.Existing == nil {
		return departments
	}
	out := make([]models.Department, 0, len(departments))
	for _, d := range departments {
		if d.ID != f.Existing.ID {
			out = append(out, d)
		}
	}
	return out
}

// Payload shapes the draft: trimmed strings, uppercased code, nulls for the
// unselected optional references.
func (f *DepartmentForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"organization_id":      f.Draft.OrganizationID,
		"site_id":              f.Draft.SiteID,
		"department_name":      trimmed(f.Draft.DepartmentName),
		"department_code":      upperOrNil(f.Draft.DepartmentCode),
		"parent_department_id": intOrNil(f.Draft.ParentDepartmentID),
		"head_employee_id":     intOrNil(f.Draft.HeadEmployeeID),
		"description":          trimmed(f.Draft.Description),
		"is_active":            f.Draft.IsActive,
	}
}
