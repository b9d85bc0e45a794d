package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgconsole/internal/models"
)

func validEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha.patil@acme.test",
		Phone:     "9876543210",

		OrganizationID: 1,
		SiteID:         2,
		DepartmentID:   3,
		DesignationID:  4,
		RoleID:         5,
		JoiningDate:    "2024-06-01",
		EmploymentType: "full_time",

		CurrentAddress: "12 MG Road, Pune",
		SameAsCurrent:  true,
	}
}

func TestEmployeeFormStartsAtStepOne(t *testing.T) {
	f := NewEmployeeForm(nil)
	assert.Equal(t, 1, f.Step())
	assert.Equal(t, models.EmploymentFullTime, f.Draft.EmploymentType)
}

func TestNextBlockedByCurrentStepErrors(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()
	f.Draft.Email = "not-an-email"

	errs := f.Next()
	require.Contains(t, errs, "email")
	assert.Equal(t, 1, f.Step(), "an invalid step never advances")

	f.Draft.Email = "asha.patil@acme.test"
	assert.Empty(t, f.Next())
	assert.Equal(t, 2, f.Step())
}

func TestNextValidatesOnlyCurrentStep(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()
	// Step 2 is completely broken; step 1 must still advance.
	f.Draft.SiteID = 0
	f.Draft.JoiningDate = ""

	assert.Empty(t, f.Next())
	assert.Equal(t, 2, f.Step())

	errs := f.Next()
	assert.Contains(t, errs, "site_id")
	assert.Contains(t, errs, "joining_date")
	assert.Equal(t, 2, f.Step())
}

func TestPreviousNeverValidates(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()
	require.Empty(t, f.Next())
	require.Equal(t, 2, f.Step())

	f.Draft.FirstName = "" // step 1 now invalid
	f.Previous()
	assert.Equal(t, 1, f.Step())

	f.Previous()
	assert.Equal(t, 1, f.Step(), "already at the first step")
}

func TestStepThreePermanentAddressRule(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()
	f.Draft.SameAsCurrent = false
	f.Draft.PermanentAddress = ""

	errs := f.ValidateStep(3)
	require.Contains(t, errs, "permanent_address")

	f.Draft.SameAsCurrent = true
	assert.Empty(t, f.ValidateStep(3))

	f.Draft.SameAsCurrent = false
	f.Draft.PermanentAddress = "44 FC Road, Pune"
	assert.Empty(t, f.ValidateStep(3))
}

func TestStepFieldFormats(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()

	f.Draft.Phone = "12345"
	assert.Contains(t, f.ValidateStep(1), "phone")
	f.Draft.Phone = "9876543210"

	f.Draft.DateOfBirth = "01-06-1990"
	assert.Contains(t, f.ValidateStep(1), "date_of_birth")
	f.Draft.DateOfBirth = "1990-06-01"
	assert.Empty(t, f.ValidateStep(1))

	f.Draft.AadharNumber = "12345"
	assert.Contains(t, f.ValidateStep(3), "aadhar_number")
	f.Draft.AadharNumber = "123456789012"

	f.Draft.PanNumber = "abc123"
	assert.Contains(t, f.ValidateStep(3), "pan_number")
	f.Draft.PanNumber = "ABCDE1234F"

	f.Draft.BankIFSC = "SBIN123"
	assert.Contains(t, f.ValidateStep(3), "bank_ifsc")
	f.Draft.BankIFSC = "SBIN0001234"
	assert.Empty(t, f.ValidateStep(3))
}

func TestEmploymentTypeRestricted(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()

	for _, ok := range []string{"full_time", "part_time", "contract", "intern"} {
		f.Draft.EmploymentType = ok
		assert.Empty(t, f.ValidateStep(2), "employment type %q must be accepted", ok)
	}
	f.Draft.EmploymentType = "freelance"
	assert.Contains(t, f.ValidateStep(2), "employment_type")
}

func TestEmployeePayloadShaping(t *testing.T) {
	f := NewEmployeeForm(nil)
	f.Draft = validEmployeeDraft()
	f.Draft.FirstName = "  Asha "
	f.Draft.PanNumber = "abcde1234f"
	f.Draft.BankIFSC = "sbin0001234"

	payload := f.Payload()
	assert.Equal(t, "Asha", payload["first_name"])
	assert.Equal(t, "ABCDE1234F", payload["pan_number"], "PAN is uppercased on submit")
	assert.Equal(t, "SBIN0001234", payload["bank_ifsc"], "IFSC is uppercased on submit")
	assert.Nil(t, payload["middle_name"], "blank optionals go out as null")
	assert.Nil(t, payload["reporting_manager_id"])
	assert.Equal(t, "12 MG Road, Pune", payload["permanent_address"], "same-as-current copies the current address")
}

func TestEmployeeFormEditNeverLosesOptionals(t *testing.T) {
	middle := "Rao"
	permanent := "44 FC Road, Pune"
	mgr := 9
	existing := &models.Employee{
		ID: 11, OrganizationID: 1, SiteID: 2, DepartmentID: 3, DesignationID: 4, RoleID: 5,
		FirstName: "Asha", MiddleName: &middle, LastName: "Patil",
		Email: "asha.patil@acme.test", Phone: "9876543210",
		JoiningDate: "2024-06-01", EmploymentType: "full_time",
		CurrentAddress: "12 MG Road, Pune", PermanentAddress: &permanent,
		ReportingManagerID: &mgr,
	}
	f := NewEmployeeForm(existing)
	assert.Equal(t, "Rao", f.Draft.MiddleName)
	assert.Equal(t, 9, f.Draft.ReportingManagerID)
	assert.Equal(t, "", f.Draft.Gender, "nil optionals populate as empty, not garbage")

	payload := f.Payload()
	assert.Equal(t, "Rao", payload["middle_name"])
	assert.Equal(t, 9, payload["reporting_manager_id"])
	assert.Equal(t, permanent, payload["permanent_address"])
	assert.Nil(t, payload["gender"], "optionals that were empty stay null through an edit")
}
