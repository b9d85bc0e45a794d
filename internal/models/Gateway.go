package models

import "time"

// Gateway is a LoRaWAN gateway registered to an organization. The EUI is
// stored as 16 bare hex characters; the UI shows it colon-delimited.
type Gateway struct {
	ID             int    `json:"id"`
	OrganizationID int    `json:"organization_id"`
	SiteID         *int   `json:"site_id"`
	GatewayEUI     string `json:"gateway_eui"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	LocationID     *int   `json:"location_id"`

	// GPS position reported by the gateway itself
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  *float64 `json:"altitude"`

	// Technical
	Model         string   `json:"model"`
	Board         string   `json:"board"`
	AntennaType   string   `json:"antenna_type"`
	AntennaGain   *float64 `json:"antenna_gain"`
	StatsInterval *int     `json:"stats_interval"`

	Tags     map[string]string      `json:"tags"`
	Metadata map[string]interface{} `json:"metadata"`

	LastSeenAt       *time.Time `json:"last_seen_at"`
	MinutesSinceSeen *int       `json:"minutes_since_seen"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
