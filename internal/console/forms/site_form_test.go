package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgconsole/internal/models"
)

func TestSiteFormCreateDefaults(t *testing.T) {
	f := NewSiteForm(nil)
	assert.False(t, f.IsEdit())
	assert.Equal(t, "India", f.Draft.Country)
	assert.True(t, f.Draft.IsActive)
}

func TestSiteFormEditPopulates(t *testing.T) {
	site := &models.Site{
		ID: 5, OrganizationID: 1,
		SiteName: "Head Office", SiteCode: "hq",
		Address: "1 Industrial Estate", City: "Pune", State: "Maharashtra",
		Country: "India", Pincode: "411001", IsActive: false,
	}
	f := NewSiteForm(site)
	assert.True(t, f.IsEdit())
	assert.Equal(t, "hq", f.Draft.SiteCode)
	assert.False(t, f.Draft.IsActive)
}

func TestSiteFormCollectsEveryViolation(t *testing.T) {
	f := NewSiteForm(nil)
	f.Draft = SiteDraft{} // nothing filled in

	errs := f.Validate()
	for _, field := range []string{"organization_id", "site_name", "site_code", "address", "city", "state", "country", "pincode"} {
		assert.Contains(t, errs, field)
	}
	assert.Len(t, errs, 8, "every missing required field reports at once")
}

func TestSiteFormPincodeBoundary(t *testing.T) {
	f := NewSiteForm(nil)
	f.Draft = SiteDraft{
		OrganizationID: 1, SiteName: "HQ", SiteCode: "hq",
		Address: "a", City: "Pune", State: "MH", Country: "India",
		Pincode: "41100",
	}
	errs := f.Validate()
	require.Contains(t, errs, "pincode")
	assert.Equal(t, "pincode must be exactly 6 digits", errs["pincode"])

	f.Draft.Pincode = "411001"
	assert.Empty(t, f.Validate())
}

func TestSiteFormClearError(t *testing.T) {
	f := NewSiteForm(nil)
	f.Draft = SiteDraft{}
	f.Validate()
	require.Contains(t, f.Errors, "site_name")

	f.ClearError("site_name")
	assert.NotContains(t, f.Errors, "site_name")
	assert.Contains(t, f.Errors, "city", "other errors stay until their fields are edited")
}

func TestSiteFormPayloadTrimsButKeepsCodeCase(t *testing.T) {
	f := NewSiteForm(nil)
	f.Draft = SiteDraft{
		OrganizationID: 1,
		SiteName:       "  Head Office  ",
		SiteCode:       " hq ",
		Address:        "1 Industrial Estate",
		City:           "Pune",
		State:          "Maharashtra",
		Country:        "India",
		Pincode:        "411001",
		IsActive:       true,
	}

	payload := f.Payload()
	assert.Equal(t, "Head Office", payload["site_name"])
	assert.Equal(t, "hq", payload["site_code"], "site codes are stored as entered, never uppercased")
	assert.Equal(t, true, payload["is_active"])
}
