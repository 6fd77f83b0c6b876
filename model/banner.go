package model

type Banner struct {
	DTO
	Name        string  `gorm:"not null;index" validate:"required" json:"name"`
	ImageUrl    string  `gorm:"not null" json:"imageUrl"`
	Type        *string `json:"type"`
	Description *string `gorm:"type:text" json:"description"`
	Link        *string `json:"link"`
}

type Banners []Banner

type CreateBannerInput struct {
	Name        string  `validate:"required" json:"name"`
	ImageUrl    string  `validate:"required,url" json:"imageUrl"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Link        *string `validate:"omitempty,url" json:"link"`
}

type EditBannerInput struct {
	Name        *string `json:"name"`
	ImageUrl    *string `validate:"omitempty,url" json:"imageUrl"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Link        *string `validate:"omitempty,url" json:"link"`
}

type FilterBanner struct {
	Pagination
	SearchKey string `query:"searchKey"`
}
