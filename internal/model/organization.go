package model

import "time"

// Organization is the tenant boundary. Slug is derived from the name at
// creation when not supplied and never recomputed afterwards.
type Organization struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ID          int64     `json:"id"`
	IsActive    bool      `json:"is_active"`
}
