package model

import "travel_booking/utils"

type Activity struct {
	DTO
	CategoryId    uint              `gorm:"not null;index" validate:"required" json:"categoryId"`
	Category      Category          `gorm:"foreignKey:CategoryId" json:"category"`
	Title         string            `gorm:"not null;index" validate:"required" json:"title"`
	Slug          string            `gorm:"uniqueIndex" json:"slug"`
	Description   string            `gorm:"type:text" json:"description"`
	ImageUrls     utils.StringSlice `gorm:"type:jsonb" json:"imageUrls"`
	Price         int               `gorm:"not null" json:"price"`
	PriceDiscount *int              `json:"price_discount"`
	Rating        float64           `gorm:"default:4" json:"rating"`
	TotalReviews  int               `json:"total_reviews"`
	Facilities    string            `gorm:"type:text" json:"facilities"`
	Address       string            `json:"address"`
	Province      string            `gorm:"index" json:"province"`
	City          string            `gorm:"index" json:"city"`
	LocationMaps  string            `gorm:"type:text" json:"location_maps"`
}

type Activities []Activity

type CreateActivityInput struct {
	CategoryId    uint     `validate:"required" json:"categoryId"`
	Title         string   `validate:"required" json:"title"`
	Description   string   `json:"description"`
	ImageUrls     []string `json:"imageUrls"`
	Price         int      `validate:"gte=0" json:"price"`
	PriceDiscount *int     `validate:"omitempty,gte=0" json:"price_discount"`
	Rating        *float64 `validate:"omitempty,gte=0,lte=5" json:"rating"`
	TotalReviews  *int     `validate:"omitempty,gte=0" json:"total_reviews"`
	Facilities    string   `json:"facilities"`
	Address       string   `json:"address"`
	Province      string   `json:"province"`
	City          string   `json:"city"`
	LocationMaps  string   `json:"location_maps"`
}

type EditActivityInput struct {
	CategoryId    *uint     `json:"categoryId"`
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	ImageUrls     *[]string `json:"imageUrls"`
	Price         *int      `validate:"omitempty,gte=0" json:"price"`
	PriceDiscount *int      `validate:"omitempty,gte=0" json:"price_discount"`
	Rating        *float64  `validate:"omitempty,gte=0,lte=5" json:"rating"`
	TotalReviews  *int      `validate:"omitempty,gte=0" json:"total_reviews"`
	Facilities    *string   `json:"facilities"`
	Address       *string   `json:"address"`
	Province      *string   `json:"province"`
	City          *string   `json:"city"`
	LocationMaps  *string   `json:"location_maps"`
}

type FilterActivity struct {
	Pagination
	SearchKey  string `query:"searchKey"`
	CategoryId uint   `query:"categoryId"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=popularity rating price-low price-high"`
}
