package models

import "time"

// Organization is the tenant root. Every list and create operation is scoped
// to the organization id carried in the caller's token.
type Organization struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
