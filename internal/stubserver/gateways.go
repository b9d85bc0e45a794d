package stubserver

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orgconsole/internal/models"
)

var euiPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

func (s *Server) listGateways(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	siteID := queryInt(c, "site_id")

	s.store.mu.RLock()
	items := make([]models.Gateway, 0)
	for _, id := range sortedIDs(s.store.gateways) {
		gw := s.store.gateways[id]
		if gw.OrganizationID != orgID {
			continue
		}
		if siteID != 0 && (gw.SiteID == nil || *gw.SiteID != siteID) {
			continue
		}
		if !matchActive(c, gw.IsActive) {
			continue
		}
		items = append(items, withLiveness(gw))
	}
	s.store.mu.RUnlock()

	respondList(c, items)
}

// withLiveness fills the derived minutes_since_seen field.
func withLiveness(gw models.Gateway) models.Gateway {
	if gw.LastSeenAt != nil {
		mins := int(time.Since(*gw.LastSeenAt).Minutes())
		gw.MinutesSinceSeen = &mins
	}
	return gw
}

func (s *Server) getGateway(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.RLock()
	gw, found := s.store.gateways[id]
	s.store.mu.RUnlock()
	if !found || gw.OrganizationID != orgID {
		respondMessage(c, http.StatusNotFound, "Gateway not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": withLiveness(gw)})
}

type gatewayInput struct {
	OrganizationID int      `json:"organization_id"`
	SiteID         *int     `json:"site_id"`
	GatewayEUI     string   `json:"gateway_eui"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	LocationID     *int     `json:"location_id"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Altitude       *float64 `json:"altitude"`
	Model          string   `json:"model"`
	Board          string   `json:"board"`
	AntennaType    string   `json:"antenna_type"`
	AntennaGain    *float64 `json:"antenna_gain"`
	StatsInterval  *int     `json:"stats_interval"`

	Tags     map[string]string      `json:"tags"`
	Metadata map[string]interface{} `json:"metadata"`

	IsActive *bool `json:"is_active"`
}

func (in gatewayInput) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fieldError{Field: "name", Message: "name is required"})
	}
	if !euiPattern.MatchString(strings.ToLower(in.GatewayEUI)) {
		errs = append(errs, fieldError{Field: "gateway_eui", Message: "EUI must be exactly 16 hex characters"})
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		errs = append(errs, fieldError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		errs = append(errs, fieldError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	return errs
}

func (in gatewayInput) apply(gw *models.Gateway) {
	gw.SiteID = in.SiteID
	gw.GatewayEUI = strings.ToLower(in.GatewayEUI)
	gw.Name = in.Name
	gw.Description = in.Description
	gw.LocationID = in.LocationID
	gw.Latitude = in.Latitude
	gw.Longitude = in.Longitude
	gw.Altitude = in.Altitude
	gw.Model = in.Model
	gw.Board = in.Board
	gw.AntennaType = in.AntennaType
	gw.AntennaGain = in.AntennaGain
	gw.StatsInterval = in.StatsInterval
	if in.Tags != nil {
		gw.Tags = in.Tags
	}
	if in.Metadata != nil {
		gw.Metadata = in.Metadata
	}
	if in.IsActive != nil {
		gw.IsActive = *in.IsActive
	}
}

func (s *Server) createGateway(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in gatewayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	for _, existing := range s.store.gateways {
		if existing.GatewayEUI == strings.ToLower(in.GatewayEUI) {
			s.store.mu.Unlock()
			respondFieldErrors(c, []fieldError{{Field: "gateway_eui", Message: "a gateway with this EUI already exists"}})
			return
		}
	}
	now := time.Now()
	gw := models.Gateway{
		ID:             s.store.next(),
		OrganizationID: orgID,
		Tags:           map[string]string{},
		Metadata:       map[string]interface{}{},
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	in.apply(&gw)
	s.store.gateways[gw.ID] = gw
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": gw})
}

func (s *Server) updateGateway(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	var in gatewayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	s.store.mu.Lock()
	gw, found := s.store.gateways[id]
	if !found || gw.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Gateway not found")
		return
	}
	in.apply(&gw)
	gw.UpdatedAt = time.Now()
	s.store.gateways[id] = gw
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"data": gw})
}

func (s *Server) deleteGateway(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	gw, found := s.store.gateways[id]
	if !found || gw.OrganizationID != orgID {
		s.store.mu.Unlock()
		respondMessage(c, http.StatusNotFound, "Gateway not found")
		return
	}
	delete(s.store.gateways, id)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Gateway deleted"})
}
