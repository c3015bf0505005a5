package models

import "time"

type Therapist struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"shop"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Nickname string `gorm:"size:100" json:"nickname"`
	Bio      string `gorm:"size:500" json:"bio"`

	// Identifier in the reservation backend, used for slot lookups.
	BackendTherapistID string `gorm:"size:64;index" json:"backend_therapist_id"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
