package models

import "time"

// Zone types. A Single zone carries exactly one meaningful location; a
// Multiple zone can hold many.
const (
	ZoneTypeSingle   = "Single"
	ZoneTypeMultiple = "Multiple"
)

// Zone groups one or more geofence locations under a site.
type Zone struct {
	ID             int       `json:"id"`
	OrganizationID int       `json:"organization_id"`
	SiteID         int       `json:"site_id"`
	ZoneName       string    `json:"zone_name"`
	ZoneType       string    `json:"zone_type"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location is a circular geofence: WGS84 center plus a radius in meters.
type Location struct {
	ID           int       `json:"id"`
	ZoneID       int       `json:"zone_id"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
