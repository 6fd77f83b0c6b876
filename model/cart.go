package model

type Cart struct {
	DTO
	UserId     uint     `gorm:"not null;index" json:"userId"`
	ActivityId uint     `gorm:"not null;index" json:"activityId"`
	Activity   Activity `gorm:"foreignKey:ActivityId" json:"activity"`
	Quantity   int      `gorm:"not null;default:1" json:"quantity"`
}

type Carts []Cart

type AddCartInput struct {
	ActivityId uint `validate:"required" json:"activityId"`
	Quantity   int  `json:"quantity"`
}

type UpdateCartInput struct {
	Quantity int `validate:"required" json:"quantity"`
}

// CartAddResult reports how many units of a batch add were persisted.
// Units before FailedAt are already stored and are not rolled back.
type CartAddResult struct {
	SucceededCount int  `json:"succeededCount"`
	FailedAt       *int `json:"failedAt,omitempty"`
}
