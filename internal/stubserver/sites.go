package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/middleware"
	"orgconsole/internal/models"
)

// orgScope reads the tenant id stored by the auth middleware; requests
// without one are rejected before touching the store.
func orgScope(c *gin.Context) (int, bool) {
	orgID, ok := middleware.OrgID(c)
	if !ok {
		respondMessage(c, http.StatusForbidden, "Invalid organization access")
		return 0, false
	}
	return orgID, true
}

func (s *Server) listSites(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	items := make([]models.Site, 0)
	for _, id := range sortedIDs(s.store.sites) {
		site := s.store.sites[id]
		if site.OrganizationID != orgID {
			continue
		}
		if !matchActive(c, site.IsActive) {
			continue
		}
		if search := strings.ToLower(c.Query("search")); search != "" {
			if !strings.Contains(strings.ToLower(site.SiteName), search) &&
				!strings.Contains(strings.ToLower(site.SiteCode), search) {
				continue
			}
		}
		items = append(items, site)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

func (s *Server) getSite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	site, found := s.store.sites[id]
	s.store.mu.RUnlock()
	if !found || site.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Site not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": site})
}

type siteInput struct {
	OrganizationID int    `json:"organization_id"`
	SiteName       string `json:"site_name"`
	SiteCode       string `json:"site_code"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Pincode        string `json:"pincode"`
	IsActive       *bool  `json:"is_active"`
}

func (in siteInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.SiteName) == "" {
		errs = append(errs, fieldError{Field: "site_name", Message: "site name is required"})
	}
	if strings.TrimSpace(in.SiteCode) == "" {
		errs = append(errs, fieldError{Field: "site_code", Message: "site code is required"})
	}
	if strings.TrimSpace(in.Pincode) == "" {
		errs = append(errs, fieldError{Field: "pincode", Message: "pincode is required"})
	}
	return errs
}

func (s *Server) createSite(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in siteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.OrganizationID != 0 && in.OrganizationID != orgID {
		respondMessage(c, http.StatusForbidden, "Invalid organization access")
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
	site := models.Site{
		ID:             s.store.next(),
		OrganizationID: orgID,
		SiteName:       in.SiteName,
		SiteCode:       in.SiteCode,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		Pincode:        in.Pincode,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.sites[site.ID] = site
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": site})
}

func (s *Server) updateSite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in siteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	site, found := s.store.sites[id]
	if !found || site.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Site not found")
		return
	}
	site.SiteName = in.SiteName
	site.SiteCode = in.SiteCode
	site.Address = in.Address
	site.City = in.City
	site.State = in.State
	site.Country = in.Country
	site.Pincode = in.Pincode
	if in.IsActive != nil {
		site.IsActive = *in.IsActive
	}
	site.UpdatedAt = time.Now()
	s.store.sites[id] = site
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": site})
}

func (s *Server) deleteSite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	site, found := s.store.sites[id]
	if !found || site.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Site not found")
		return
	}
	delete(s.store.sites, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Site deleted"})
}

func (s *Server) listOrganizations(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	// Tenants only ever see their own organization.
	s.store.mu.RLock()
	items := make([]models.Organization, 0, 1)
	if org, found := s.store.organizations[orgID]; found {
		items = append(items, org)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}
