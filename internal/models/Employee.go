package models

import "time"

// Employment types accepted by the backend.
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"
)

// Employee carries the personal, employment, identity and emergency-contact
// sections captured by the four-step employee form. Identity and bank fields
// are optional and sensitive; the backend may omit them from list responses.
type Employee struct {
	ID             int    `json:"id"`
	EmployeeCode   string `json:"employee_code"`
	OrganizationID int    `json:"organization_id"`
	SiteID         int    `json:"site_id"`
	DepartmentID   int    `json:"department_id"`
	DesignationID  int    `json:"designation_id"`
	RoleID         int    `json:"role_id"`

	// Personal
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	BloodGroup  *string `json:"blood_group"`

	// Address
	CurrentAddress   string  `json:"current_address"`
	PermanentAddress *string `json:"permanent_address"`

	// Employment
	JoiningDate        string `json:"joining_date"`
	EmploymentType     string `json:"employment_type"`
	ReportingManagerID *int   `json:"reporting_manager_id"`

	// Identity / bank (optional, sensitive)
	AadharNumber  *string `json:"aadhar_number"`
	PanNumber     *string `json:"pan_number"`
	BankAccountNo *string `json:"bank_account_no"`
	BankIFSC      *string `json:"bank_ifsc"`

	// Emergency contact
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
