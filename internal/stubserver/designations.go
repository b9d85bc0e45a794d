package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/models"
)

func (s *Server) listDesignations(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	level := queryInt(c, "level")

	s.store.mu.RLock()
	items := make([]models.Designation, 0)
	for _, id := range sortedIDs(s.store.designations) {
		desig := s.store.designations[id]
		if desig.OrganizationID != orgID {
			continue
		}
		if level != 0 && desig.Level != level {
			continue
		}
		if !matchActive(c, desig.IsActive) {
			continue
		}
		items = append(items, desig)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

func (s *Server) getDesignation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	desig, found := s.store.designations[id]
	s.store.mu.RUnlock()
	if !found || desig.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Designation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": desig})
}

type designationInput struct {
	OrganizationID  int    `json:"organization_id"`
	DesignationName string `json:"designation_name"`
	DesignationCode string `json:"designation_code"`
	Level           int    `json:"level"`
	Description     string `json:"description"`
	IsActive        *bool  `json:"is_active"`
}

func (in designationInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.DesignationName) == "" {
		errs = append(errs, fieldError{Field: "designation_name", Message: "designation name is required"})
	}
	if in.Level < 1 || in.Level > 10 {
		errs = append(errs, fieldError{Field: "level", Message: "level must be between 1 and 10"})
	}
	return errs
}

func (s *Server) createDesignation(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in designationInput
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
	desig := models.Designation{
		ID:              s.store.next(),
		OrganizationID:  orgID,
		DesignationName: in.DesignationName,
		DesignationCode: in.DesignationCode,
		Level:           in.Level,
		Description:     in.Description,
		IsActive:        active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.store.designations[desig.ID] = desig
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": desig})
}

func (s *Server) updateDesignation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in designationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	desig, found := s.store.designations[id]
	if !found || desig.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Designation not found")
		return
	}
	desig.DesignationName = in.DesignationName
	desig.DesignationCode = in.DesignationCode
	desig.Level = in.Level
	desig.Description = in.Description
	if in.IsActive != nil {
		desig.IsActive = *in.IsActive
	}
	desig.UpdatedAt = time.Now()
	s.store.designations[id] = desig
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": desig})
}

func (s *Server) deleteDesignation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	desig, found := s.store.designations[id]
	if !found || desig.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Designation not found")
		return
	}
	delete(s.store.designations, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Designation deleted"})
}
