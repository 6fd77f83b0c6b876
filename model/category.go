package model

type Category struct {
	DTO
	Name     string `gorm:"not null;index" validate:"required" json:"name"`
	ImageUrl string `json:"imageUrl"`
}

type Categories []Category

type CreateCategoryInput struct {
	Name     string `validate:"required" json:"name"`
	ImageUrl string `validate:"omitempty,url" json:"imageUrl"`
}

type EditCategoryInput struct {
	Name     *string `json:"name"`
	ImageUrl *string `validate:"omitempty,url" json:"imageUrl"`
}

type FilterCategory struct {
	Pagination
	SearchKey string `query:"searchKey"`
}
