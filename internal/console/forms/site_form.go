package forms

import "orgconsole/internal/models"

// SiteDraft is the site modal's working copy.
type SiteDraft struct {
	OrganizationID int    `json:"organization_id" validate:"required"`
	SiteName       string `json:"site_name" validate:"required,max=100"`
	SiteCode       string `json:"site_code" validate:"required,max=20"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Country        string `json:"country" validate:"required"`
	Pincode        string `json:"pincode" validate:"required,pincode6"`
	IsActive       bool   `json:"is_active"`
}

// SiteForm owns the draft and field errors of the site create/edit modal.
type SiteForm struct {
	Existing *models.Site
	Draft    SiteDraft
	Errors   Errors
}

// NewSiteForm starts a create form with defaults, or an edit form populated
// from the record.
func NewSiteForm(existing *models.Site) *SiteForm {
	f := &SiteForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = SiteDraft{Country: "India", IsActive: true}
		return f
	}
	f.Draft = SiteDraft{
		OrganizationID: existing.OrganizationID,
		SiteName:       existing.SiteName,
		SiteCode:       existing.SiteCode,
		Address:        existing.Address,
		City:           existing.City,
		State:          existing.State,
		Country:        existing.Country,
		Pincode:        existing.Pincode,
		IsActive:       existing.IsActive,
	}
	return f
}

// Validate collects every violation of the current draft.
func (f *SiteForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	return f.Errors
}

// ClearError drops one field's error as soon as the field is re-edited.
func (f *SiteForm) ClearError(field string) {
	delete(f.Errors, field)
}

// IsEdit reports whether the form updates an existing record.
func (f *SiteForm) IsEdit() bool { return f.Existing != nil }

// Payload shapes the draft for submission. Strings are trimmed; site codes
// are stored as entered, not uppercased.
func (f *SiteForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"organization_id": f.Draft.OrganizationID,
		"site_name":       trimmed(f.Draft.SiteName),
		"site_code":       trimmed(f.Draft.SiteCode),
		"address":         trimmed(f.Draft.Address),
		"city":            trimmed(f.Draft.City),
		"state":           trimmed(f.Draft.State),
		"country":         trimmed(f.Draft.Country),
		"pincode":         trimmed(f.Draft.Pincode),
		"is_active":       f.Draft.IsActive,
	}
}
