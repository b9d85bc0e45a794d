package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/models"
)

func (s *Server) listDepartments(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	siteID := queryInt(c, "site_id")

	s.store.mu.RLock()
	items := make([]models.Department, 0)
	for _, id := range sortedIDs(s.store.departments) {
		dept := s.store.departments[id]
		if dept.OrganizationID != orgID {
			continue
		}
		if siteID != 0 && dept.SiteID != siteID {
			continue
		}
		if !matchActive(c, dept.IsActive) {
			continue
		}
		items = append(items, dept)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

func (s *Server) getDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	dept, found := s.store.departments[id]
	s.store.mu.RUnlock()
	if !found || dept.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Department not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dept})
}

// departmentHierarchy nests an organization's departments into a tree of
// `{...department, children: [...]}` nodes.
func (s *Server) departmentHierarchy(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	flat := make([]models.Department, 0)
	for _, id := range sortedIDs(s.store.departments) {
		dept := s.store.departments[id]
		if dept.OrganizationID == orgID {
			flat = append(flat, dept)
		}
	}
	s.store.mu.RUnlock()

	var build func(parent *int) []models.DepartmentNode
	build = func(parent *int) []models.DepartmentNode {
		nodes := make([]models.DepartmentNode, 0)
		for _, dept := range flat {
			matches := (parent == nil && dept.ParentDepartmentID == nil) ||
				(parent != nil && dept.ParentDepartmentID != nil && *dept.ParentDepartmentID == *parent)
			if !matches {
				continue
			}
			id := dept.ID
			nodes = append(nodes, models.DepartmentNode{
				Department: dept,
				Children:   build(&id),
			})
		}
		return nodes
	}

	c.JSON(http.StatusOK, gin.H{"data": build(nil)})
}

type departmentInput struct {
	OrganizationID     int    `json:"organization_id"`
	SiteID             int    `json:"site_id"`
	DepartmentName     string `json:"department_name"`
	DepartmentCode     string `json:"department_code"`
	ParentDepartmentID *int   `json:"parent_department_id"`
	HeadEmployeeID     *int   `json:"head_employee_id"`
	Description        string `json:"description"`
	IsActive           *bool  `json:"is_active"`
}

func (in departmentInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.DepartmentName) == "" {
		errs = append(errs, fieldError{Field: "department_name", Message: "department name is required"})
	}
	if in.SiteID == 0 {
		errs = append(errs, fieldError{Field: "site_id", Message: "site is required"})
	}
	return errs
}

func (s *Server) createDepartment(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in departmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	now := time.Now()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	s.store.mu.Lock()
	dept := models.Department{
		ID:                 s.store.next(),
		OrganizationID:     orgID,
		SiteID:             in.SiteID,
		DepartmentName:     in.DepartmentName,
		DepartmentCode:     in.DepartmentCode,
		ParentDepartmentID: in.ParentDepartmentID,
		HeadEmployeeID:     in.HeadEmployeeID,
		Description:        in.Description,
		IsActive:           active,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.store.departments[dept.ID] = dept
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": dept})
}

func (s *Server) updateDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in departmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}
	if in.ParentDepartmentID != nil && *in.ParentDepartmentID == id {
		respondFieldErrors(c, []fieldError{{Field: "parent_department_id", Message: "a department cannot be its own parent"}})
		return
	}

	s.store.mu.Lock()
	dept, found := s.store.departments[id]
	if !found || dept.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Department not found")
		return
	}
	dept.SiteID = in.SiteID
	dept.DepartmentName = in.DepartmentName
	dept.DepartmentCode = in.DepartmentCode
	dept.ParentDepartmentID = in.ParentDepartmentID
	dept.HeadEmployeeID = in.HeadEmployeeID
	dept.Description = in.Description
	if in.IsActive != nil {
		dept.IsActive = *in.IsActive
	}
	dept.UpdatedAt = time.Now()
	s.store.departments[id] = dept
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": dept})
}

func (s *Server) deleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	dept, found := s.store.departments[id]
	if !found || dept.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Department not found")
		return
	}
	delete(s.store.departments, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}
