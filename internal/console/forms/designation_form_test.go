package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgconsole/internal/models"
)

func validDesignationDraft() DesignationDraft {
	return DesignationDraft{
		OrganizationID:  1,
		DesignationName: "Team Lead",
		DesignationCode: "tl",
		Level:           "5",
		IsActive:        true,
	}
}

func TestDesignationLevelBoundaries(t *testing.T) {
	f := NewDesignationForm(nil)
	f.Draft = validDesignationDraft()

	for _, ok := range []string{"1", "10", "5"} {
		f.Draft.Level = ok
		assert.Empty(t, f.Validate(), "level %s must be accepted", ok)
	}
	for _, bad := range []string{"0", "11", "-1", "ten", ""} {
		f.Draft.Level = bad
		errs := f.Validate()
		require.Contains(t, errs, "level", "level %q must be rejected", bad)
	}
	f.Draft.Level = "0"
	assert.Equal(t, "level must be between 1 and 10", f.Validate()["level"])
}

func TestDesignationFormEditRoundTrip(t *testing.T) {
	existing := &models.Designation{
		ID: 3, OrganizationID: 1,
		DesignationName: "Team Lead", DesignationCode: "TL",
		Level: 5, IsActive: true,
	}
	f := NewDesignationForm(existing)
	assert.Equal(t, "5", f.Draft.Level)

	payload := f.Payload()
	assert.Equal(t, 5, payload["level"], "level goes back to the wire as an integer")
}

func TestDesignationFormPayloadUppercasesCode(t *testing.T) {
	f := NewDesignationForm(nil)
	f.Draft = validDesignationDraft()
	assert.Equal(t, "TL", f.Payload()["designation_code"])
}
