package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/models"
)

func (s *Server) listEmployees(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	siteID := queryInt(c, "site_id")
	deptID := queryInt(c, "department_id")
	desigID := queryInt(c, "designation_id")
	empType := c.Query("employment_type")
	search := strings.ToLower(c.Query("search"))

	s.store.mu.RLock()
	items := make([]models.Employee, 0)
	for _, id := range sortedIDs(s.store.employees) {
		emp := s.store.employees[id]
		if emp.OrganizationID != orgID {
			continue
		}
		if siteID != 0 && emp.SiteID != siteID {
			continue
		}
		if deptID != 0 && emp.DepartmentID != deptID {
			continue
		}
		if desigID != 0 && emp.DesignationID != desigID {
			continue
		}
		if empType != "" && emp.EmploymentType != empType {
			continue
		}
		if !matchActive(c, emp.IsActive) {
			continue
		}
		if search != "" {
			blob := strings.ToLower(emp.FirstName + " " + emp.LastName + " " + emp.Email + " " + emp.EmployeeCode)
			if !strings.Contains(blob, search) {
				continue
			}
		}
		items = append(items, emp)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

func (s *Server) getEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	emp, found := s.store.employees[id]
	s.store.mu.RUnlock()
	if !found || emp.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": emp})
}

type employeeInput struct {
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	BloodGroup  *string `json:"blood_group"`

	OrganizationID     int    `json:"organization_id"`
	SiteID             int    `json:"site_id"`
	DepartmentID       int    `json:"department_id"`
	DesignationID      int    `json:"designation_id"`
	RoleID             int    `json:"role_id"`
	JoiningDate        string `json:"joining_date"`
	EmploymentType     string `json:"employment_type"`
	ReportingManagerID *int   `json:"reporting_manager_id"`

	CurrentAddress   string  `json:"current_address"`
	PermanentAddress *string `json:"permanent_address"`
	AadharNumber     *string `json:"aadhar_number"`
	PanNumber        *string `json:"pan_number"`
	BankAccountNo    *string `json:"bank_account_no"`
	BankIFSC         *string `json:"bank_ifsc"`

	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	IsActive *bool `json:"is_active"`
}

func (in employeeInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, fieldError{Field: "first_name", Message: "first name is required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, fieldError{Field: "last_name", Message: "last name is required"})
	}
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, fieldError{Field: "email", Message: "a valid email is required"})
	}
	if in.SiteID == 0 {
		errs = append(errs, fieldError{Field: "site_id", Message: "site is required"})
	}
	if in.DepartmentID == 0 {
		errs = append(errs, fieldError{Field: "department_id", Message: "department is required"})
	}
	if in.DesignationID == 0 {
		errs = append(errs, fieldError{Field: "designation_id", Message: "designation is required"})
	}
	return errs
}

func (in employeeInput) apply(emp *models.Employee) {
	emp.FirstName = in.FirstName
	emp.MiddleName = in.MiddleName
	emp.LastName = in.LastName
	emp.Email = in.Email
	emp.Phone = in.Phone
	emp.DateOfBirth = in.DateOfBirth
	emp.Gender = in.Gender
	emp.BloodGroup = in.BloodGroup
	emp.SiteID = in.SiteID
	emp.DepartmentID = in.DepartmentID
	emp.DesignationID = in.DesignationID
	emp.RoleID = in.RoleID
	emp.JoiningDate = in.JoiningDate
	emp.EmploymentType = in.EmploymentType
	emp.ReportingManagerID = in.ReportingManagerID
	emp.CurrentAddress = in.CurrentAddress
	emp.PermanentAddress = in.PermanentAddress
	emp.AadharNumber = in.AadharNumber
	emp.PanNumber = in.PanNumber
	emp.BankAccountNo = in.BankAccountNo
	emp.BankIFSC = in.BankIFSC
	emp.EmergencyContactName = in.EmergencyContactName
	emp.EmergencyContactPhone = in.EmergencyContactPhone
	if in.IsActive != nil {
		emp.IsActive = *in.IsActive
	}
}

func (s *Server) createEmployee(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in employeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	now := time.Now()
	s.store.mu.Lock()
	emp := models.Employee{
		ID:             s.store.next(),
		OrganizationID: orgID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	in.apply(&emp)
	emp.EmployeeCode = employeeCode(emp.ID)
	s.store.employees[emp.ID] = emp
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": emp})
}

func (s *Server) updateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in employeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	emp, found := s.store.employees[id]
	if !found || emp.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Employee not found")
		return
	}
	in.apply(&emp)
	emp.UpdatedAt = time.Now()
	s.store.employees[id] = emp
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": emp})
}

func (s *Server) deleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	emp, found := s.store.employees[id]
	if !found || emp.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Employee not found")
		return
	}
	delete(s.store.employees, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
