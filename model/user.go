package model

type User struct {
	DTO
	Name              string  `gorm:"not null" validate:"required" json:"name"`
	Email             string  `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password          string  `gorm:"not null" json:"-"`
	PhoneNumber       string  `json:"phoneNumber"`
	ProfilePictureUrl *string `json:"profilePictureUrl"`
	Role              string  `gorm:"not null;default:'user'" json:"role"`
	IsActive          bool    `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterInput struct {
	Name           string  `validate:"required" json:"name"`
	Email          string  `validate:"required,email" json:"email"`
	Password       string  `validate:"required,min=6" json:"password"`
	PasswordRepeat string  `validate:"required" json:"passwordRepeat"`
	PhoneNumber    string  `json:"phoneNumber"`
	Role           *string `validate:"omitempty,oneof=user admin" json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditProfileInput struct {
	Name              *string `json:"name"`
	Email             *string `validate:"omitempty,email" json:"email"`
	PhoneNumber       *string `json:"phoneNumber"`
	ProfilePictureUrl *string `validate:"omitempty,url" json:"profilePictureUrl"`
}

type UpdateRoleInput struct {
	Role string `validate:"required,oneof=user admin" json:"role"`
}

type FilterUser struct {
	Pagination
	SearchKey string  `query:"searchKey"`
	Role      *string `query:"role"`
	Active    *bool   `query:"active"`
}
