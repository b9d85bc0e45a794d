package models

import "time"

// Site is a physical office or plant belonging to an organization.
type Site struct {
	ID             int       `json:"id"`
	OrganizationID int       `json:"organization_id"`
	SiteName       string    `json:"site_name"`
	SiteCode       string    `json:"site_code"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Country        string    `json:"country"`
	Pincode        string    `json:"pincode"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
