package models

import "time"

// Department belongs to a site and may nest under a parent department,
// forming a tree per organization.
type Department struct {
	ID                 int       `json:"id"`
	OrganizationID     int       `json:"organization_id"`
	SiteID             int       `json:"site_id"`
	DepartmentName     string    `json:"department_name"`
	DepartmentCode     string    `json:"department_code"`
	ParentDepartmentID *int      `json:"parent_department_id"`
	HeadEmployeeID     *int      `json:"head_employee_id"`
	Description        string    `json:"description"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DepartmentNode is one entry of the hierarchy endpoint: a department plus
// its nested children.
type DepartmentNode struct {
	Department
	Children []DepartmentNode `json:"children"`
}
