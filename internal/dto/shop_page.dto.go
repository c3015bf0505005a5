package dto

import "github.com/yusaku0324/kakeru-sub008/internal/models"

type TherapistDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Bio      string `json:"bio"`
}

type ShopPageDTO struct {
	Shop         models.Shop          `json:"shop"`
	Therapists   []TherapistDTO       `json:"therapists"`
	Availability *ShopAvailabilityDTO `json:"availability"`
}
