package models

import "time"

type Shop struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Area        string `gorm:"size:50" json:"area"`
	Genre       string `gorm:"size:50" json:"genre"`
	Phone       string `gorm:"size:20" json:"phone"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:500" json:"description"`

	// Identifier of this shop in the reservation backend. Slots, shifts and
	// reservations are always fetched with this, never with the local ID.
	BackendProfileID string `gorm:"size:64;index" json:"backend_profile_id"`

	Published bool `gorm:"default:true" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
