package models

import "time"

// Designation is a job title with an ordinal level, 1 (entry) to 10 (top).
type Designation struct {
	ID              int       `json:"id"`
	OrganizationID  int       `json:"organization_id"`
	DesignationName string    `json:"designation_name"`
	DesignationCode string    `json:"designation_code"`
	Level           int       `json:"level"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
