package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/models"
)

func (s *Server) listZones(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	siteID := queryInt(c, "site_id")

	s.store.mu.RLock()
	items := make([]models.Zone, 0)
	for _, id := range sortedIDs(s.store.zones) {
		zone := s.store.zones[id]
		if zone.OrganizationID != orgID {
			continue
		}
		if siteID != 0 && zone.SiteID != siteID {
			continue
		}
		if !matchActive(c, zone.IsActive) {
			continue
		}
		items = append(items, zone)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

func (s *Server) getZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	zone, found := s.store.zones[id]
	s.store.mu.RUnlock()
	if !found || zone.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Zone not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": zone})
}

type zoneInput struct {
	OrganizationID int    `json:"organization_id"`
	SiteID         int    `json:"site_id"`
	ZoneName       string `json:"zone_name"`
	ZoneType       string `json:"zone_type"`
	Description    string `json:"description"`
	IsActive       *bool  `json:"is_active"`
}

func (in zoneInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.ZoneName) == "" {
		errs = append(errs, fieldError{Field: "zone_name", Message: "zone name is required"})
	}
	if in.ZoneType != models.ZoneTypeSingle && in.ZoneType != models.ZoneTypeMultiple {
		errs = append(errs, fieldError{Field: "zone_type", Message: "zone type must be Single or Multiple"})
	}
	if in.SiteID == 0 {
		errs = append(errs, fieldError{Field: "site_id", Message: "site is required"})
	}
	return errs
}

func (s *Server) createZone(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in zoneInput
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
	zone := models.Zone{
		ID:             s.store.next(),
		OrganizationID: orgID,
		SiteID:         in.SiteID,
		ZoneName:       in.ZoneName,
		ZoneType:       in.ZoneType,
		Description:    in.Description,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.zones[zone.ID] = zone
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": zone})
}

func (s *Server) updateZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in zoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	zone, found := s.store.zones[id]
	if !found || zone.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Zone not found")
		return
	}
	zone.SiteID = in.SiteID
	zone.ZoneName = in.ZoneName
	zone.ZoneType = in.ZoneType
	zone.Description = in.Description
	if in.IsActive != nil {
		zone.IsActive = *in.IsActive
	}
	zone.UpdatedAt = time.Now()
	s.store.zones[id] = zone
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": zone})
}

func (s *Server) deleteZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	zone, found := s.store.zones[id]
	if !found || zone.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Zone not found")
		return
	}
	delete(s.store.zones, id)
	// Locations belong to their zone; removing the zone removes them too.
	for locID, loc := range s.store.locations {
		if loc.ZoneID == id {
			delete(s.store.locations, locID)
		}
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Zone deleted"})
}

// zoneOrg resolves a location's organization through its zone. Must be
// called with the store lock held.
func (s *Server) zoneOrg(zoneID int) (int, bool) {
	zone, ok := s.store.zones[zoneID]
	if !ok {
		return 0, false
	}
	return zone.OrganizationID, true
}

func (s *Server) listLocations(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	zoneID := queryInt(c, "zone_id")

	s.store.mu.RLock()
	items := make([]models.Location, 0)
	for _, id := range sortedIDs(s.store.locations) {
		loc := s.store.locations[id]
		locOrg, found := s.zoneOrg(loc.ZoneID)
		if !found || locOrg != orgID {
			continue
		}
		if zoneID != 0 && loc.ZoneID != zoneID {
			continue
		}
		items = append(items, loc)
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

type locationInput struct {
	ZoneID       int     `json:"zone_id"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	Address      string  `json:"address"`
}

func (in locationInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.LocationName) == "" {
		errs = append(errs, fieldError{Field: "location_name", Message: "location name is required"})
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		errs = append(errs, fieldError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		errs = append(errs, fieldError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if in.RadiusMeters <= 0 {
		errs = append(errs, fieldError{Field: "radius_meters", Message: "radius must be greater than 0"})
	}
	if in.ZoneID == 0 {
		errs = append(errs, fieldError{Field: "zone_id", Message: "zone is required"})
	}
	return errs
}

func (s *Server) createLocation(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in locationInput
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
	zoneOrg, found := s.zoneOrg(in.ZoneID)
	if !found || zoneOrg != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Zone not found")
		return
	}
	// A Single zone holds exactly one meaningful location.
	if zone := s.store.zones[in.ZoneID]; zone.ZoneType == models.ZoneTypeSingle {
		for _, loc := range s.store.locations {
			if loc.ZoneID == in.ZoneID {
				s.store.mu.Unlock()
				respondFieldErrors(c, []fieldError{{Field: "zone_id", Message: "a Single zone already has its location"}})
				return
			}
		}
	}
	loc := models.Location{
		ID:           s.store.next(),
		ZoneID:       in.ZoneID,
		LocationName: in.LocationName,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: in.RadiusMeters,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.locations[loc.ID] = loc
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": loc})
}

func (s *Server) updateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in locationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	loc, found := s.store.locations[id]
	locOrg, orgFound := 0, false
	if found {
		locOrg, orgFound = s.zoneOrg(loc.ZoneID)
	}
	if !found || !orgFound || locOrg != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Location not found")
		return
	}
	loc.LocationName = in.LocationName
	loc.Latitude = in.Latitude
	loc.Longitude = in.Longitude
	loc.RadiusMeters = in.RadiusMeters
	loc.Address = in.Address
	loc.UpdatedAt = time.Now()
	s.store.locations[id] = loc
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": loc})
}

func (s *Server) deleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	loc, found := s.store.locations[id]
	locOrg, orgFound := 0, false
	if found {
		locOrg, orgFound = s.zoneOrg(loc.ZoneID)
	}
	if !found || !orgFound || locOrg != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Location not found")
		return
	}
	delete(s.store.locations, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
