package model

import "time"

type Promo struct {
	DTO
	Title              string     `gorm:"not null;index" validate:"required" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	ImageUrl           string     `json:"imageUrl"`
	TermsCondition     string     `gorm:"type:text" json:"terms_condition"`
	PromoCode          string     `gorm:"index" validate:"required" json:"promo_code"`
	PromoDiscountPrice int        `gorm:"not null" json:"promo_discount_price"`
	MinimumClaimPrice  int        `json:"minimum_claim_price"`
	Status             string     `gorm:"default:'active'" json:"status"`
	EndDate            *time.Time `json:"endDate"`
}

type Promos []Promo

type CreatePromoInput struct {
	Title              string     `validate:"required" json:"title"`
	Description        string     `json:"description"`
	ImageUrl           string     `validate:"omitempty,url" json:"imageUrl"`
	TermsCondition     string     `json:"terms_condition"`
	PromoCode          string     `validate:"required" json:"promo_code"`
	PromoDiscountPrice int        `validate:"gte=0" json:"promo_discount_price"`
	MinimumClaimPrice  int        `validate:"gte=0" json:"minimum_claim_price"`
	EndDate            *time.Time `json:"endDate"`
}

type EditPromoInput struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	ImageUrl           *string    `validate:"omitempty,url" json:"imageUrl"`
	TermsCondition     *string    `json:"terms_condition"`
	PromoCode          *string    `json:"promo_code"`
	PromoDiscountPrice *int       `validate:"omitempty,gte=0" json:"promo_discount_price"`
	MinimumClaimPrice  *int       `validate:"omitempty,gte=0" json:"minimum_claim_price"`
	EndDate            *time.Time `json:"endDate"`
}

type FilterPromo struct {
	Pagination
	SearchKey string `query:"searchKey"`
}
