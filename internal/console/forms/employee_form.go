package forms

import "orgconsole/internal/models"

// EmployeeDraft is the four-step employee form's working copy.
type EmployeeDraft struct {
	// Step 1: personal
	FirstName   string `json:"first_name" validate:"required,max=50"`
	MiddleName  string `json:"middle_name" validate:"max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone10"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  string `json:"blood_group" validate:"max=5"`

	// Step 2: employment
	OrganizationID     int    `json:"organization_id" validate:"required"`
	SiteID             int    `json:"site_id" validate:"required"`
	DepartmentID       int    `json:"department_id" validate:"required"`
	DesignationID      int    `json:"designation_id" validate:"required"`
	RoleID             int    `json:"role_id" validate:"required"`
	JoiningDate        string `json:"joining_date" validate:"required,datetime=2006-01-02"`
	EmploymentType     string `json:"employment_type" validate:"required,oneof=full_time part_time contract intern"`
	ReportingManagerID int    `json:"reporting_manager_id"`

	// Step 3: address, identity, bank
	CurrentAddress   string `json:"current_address" validate:"required,max=500"`
	SameAsCurrent    bool   `json:"same_as_current"`
	PermanentAddress string `json:"permanent_address" validate:"max=500"`
	AadharNumber     string `json:"aadhar_number" validate:"omitempty,aadhar12"`
	PanNumber        string `json:"pan_number" validate:"omitempty,pan"`
	BankAccountNo    string `json:"bank_account_no" validate:"omitempty,max=20"`
	BankIFSC         string `json:"bank_ifsc" validate:"omitempty,ifsc"`

	// Step 4: emergency contact
	EmergencyContactName  string `json:"emergency_contact_name" validate:"max=100"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,phone10"`
}

// stepFields lists, per step, the draft fields that step validates.
var stepFields = [][]string{
	{"FirstName", "MiddleName", "LastName", "Email", "Phone", "DateOfBirth", "Gender", "BloodGroup"},
	{"OrganizationID", "SiteID", "DepartmentID", "DesignationID", "RoleID", "JoiningDate", "EmploymentType"},
	{"CurrentAddress", "PermanentAddress", "AadharNumber", "PanNumber", "BankAccountNo", "BankIFSC"},
	{"EmergencyContactName", "EmergencyContactPhone"},
}

// EmployeeSteps is the number of form steps.
const EmployeeSteps = 4

// EmployeeForm is the multi-step employee modal. Next validates only the
// current step's fields and refuses to advance while any fail; Previous
// never validates; Submit re-validates the final step only.
type EmployeeForm struct {
	Existing *models.Employee
	Draft    EmployeeDraft
	Errors   Errors
	step     int
}

func NewEmployeeForm(existing *models.Employee) *EmployeeForm {
	f := &EmployeeForm{Existing: existing, Errors: Errors{}, step: 1}
	if existing == nil {
		f.Draft = EmployeeDraft{EmploymentType: models.EmploymentFullTime}
		return f
	}
	f.Draft = EmployeeDraft{
		FirstName:   existing.FirstName,
		MiddleName:  strDefault(existing.MiddleName),
		LastName:    existing.LastName,
		Email:       existing.Email,
		Phone:       existing.Phone,
		DateOfBirth: strDefault(existing.DateOfBirth),
		Gender:      strDefault(existing.Gender),
		BloodGroup:  strDefault(existing.BloodGroup),

		OrganizationID:     existing.OrganizationID,
		SiteID:             existing.SiteID,
		DepartmentID:       existing.DepartmentID,
		DesignationID:      existing.DesignationID,
		RoleID:             existing.RoleID,
		JoiningDate:        existing.JoiningDate,
		EmploymentType:     existing.EmploymentType,
		ReportingManagerID: intDefault(existing.ReportingManagerID),

		CurrentAddress:   existing.CurrentAddress,
		PermanentAddress: strDefault(existing.PermanentAddress),
		AadharNumber:     strDefault(existing.AadharNumber),
		PanNumber:        strDefault(existing.PanNumber),
		BankAccountNo:    strDefault(existing.BankAccountNo),
		BankIFSC:         strDefault(existing.BankIFSC),

		EmergencyContactName:  strDefault(existing.EmergencyContactName),
		EmergencyContactPhone: strDefault(existing.EmergencyContactPhone),
	}
	return f
}

// Step returns the current step, 1-based.
func (f *EmployeeForm) Step() int { return f.step }

// ValidateStep runs only the given step's rules, collecting every
// violation in that subset.
func (f *EmployeeForm) ValidateStep(step int) Errors {
	if step < 1 || step > EmployeeSteps {
		return Errors{}
	}
	errs := checkFields(&f.Draft, stepFields[step-1]...)
	if step == 3 && !f.SameOK() {
		errs["permanent_address"] = "permanent_address is required"
	}
	f.Errors = errs
	return errs
}

// SameOK reports whether the permanent address requirement is satisfied:
// either the "same as current" flag is set or an address was entered.
func (f *EmployeeForm) SameOK() bool {
	return f.Draft.SameAsCurrent || trimmed(f.Draft.PermanentAddress) != ""
}

// Next advances one step if the current step validates; it returns the
// violations that blocked it otherwise.
func (f *EmployeeForm) Next() Errors {
	errs := f.ValidateStep(f.step)
	if len(errs) > 0 {
		return errs
	}
	if f.step < EmployeeSteps {
		f.step++
	}
	return Errors{}
}

// Previous steps back without re-validating anything.
func (f *EmployeeForm) Previous() {
	if f.step > 1 {
		f.step--
	}
}

// ValidateForSubmit re-validates only the current (last) step before the
// create/update call fires.
func (f *EmployeeForm) ValidateForSubmit() Errors {
	return f.ValidateStep(f.step)
}

func (f *EmployeeForm) ClearError(field string) { delete(f.Errors, field) }

func (f *EmployeeForm) IsEdit() bool { return f.Existing != nil }

// Payload shapes the full draft: trimmed strings, uppercased PAN and IFSC,
// nulls for empty optionals, permanent address defaulted to the current one
// when the flag is set.
func (f *EmployeeForm) Payload() map[string]interface{} {
	permanent := trimmed(f.Draft.PermanentAddress)
	if f.Draft.SameAsCurrent {
		permanent = trimmed(f.Draft.CurrentAddress)
	}

	return map[string]interface{}{
		"first_name":    trimmed(f.Draft.FirstName),
		"middle_name":   strOrNil(f.Draft.MiddleName),
		"last_name":     trimmed(f.Draft.LastName),
		"email":         trimmed(f.Draft.Email),
		"phone":         trimmed(f.Draft.Phone),
		"date_of_birth": strOrNil(f.Draft.DateOfBirth),
		"gender":        strOrNil(f.Draft.Gender),
		"blood_group":   strOrNil(f.Draft.BloodGroup),

		"organization_id":      f.Draft.OrganizationID,
		"site_id":              f.Draft.SiteID,
		"department_id":        f.Draft.DepartmentID,
		"designation_id":       f.Draft.DesignationID,
		"role_id":              f.Draft.RoleID,
		"joining_date":         trimmed(f.Draft.JoiningDate),
		"employment_type":      f.Draft.EmploymentType,
		"reporting_manager_id": intOrNil(f.Draft.ReportingManagerID),

		"current_address":   trimmed(f.Draft.CurrentAddress),
		"permanent_address": strOrNil(permanent),
		"aadhar_number":     strOrNil(f.Draft.AadharNumber),
		"pan_number":        upperOrNil(f.Draft.PanNumber),
		"bank_account_no":   strOrNil(f.Draft.BankAccountNo),
		"bank_ifsc":         upperOrNil(f.Draft.BankIFSC),

		"emergency_contact_name":  strOrNil(f.Draft.EmergencyContactName),
		"emergency_contact_phone": strOrNil(f.Draft.EmergencyContactPhone),
	}
}
