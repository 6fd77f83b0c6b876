package database

import (
	"log"

	"travel_booking/constants"
	"travel_booking/model"
	"travel_booking/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Name: "Administrator", Email: "admin@travelbook.example", Password: hashPassword, Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Beach", ImageUrl: "https://res.cloudinary.com/travelbook/image/upload/categories/beach.jpg"},
		{Name: "Mountain", ImageUrl: "https://res.cloudinary.com/travelbook/image/upload/categories/mountain.jpg"},
		{Name: "Theme Park", ImageUrl: "https://res.cloudinary.com/travelbook/image/upload/categories/theme-park.jpg"},
		{Name: "Culture", ImageUrl: "https://res.cloudinary.com/travelbook/image/upload/categories/culture.jpg"},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}

	var beach model.Category
	if err := db.Where(model.Category{Name: "Beach"}).First(&beach).Error; err != nil {
		return
	}

	activities := []model.Activity{
		{
			CategoryId:    beach.ID,
			Title:         "Snorkeling at Nusa Penida",
			Slug:          "snorkeling-at-nusa-penida",
			Description:   "Guided snorkeling trip across three reef spots.",
			ImageUrls:     utils.StringSlice{"https://res.cloudinary.com/travelbook/image/upload/activities/nusa-penida.jpg"},
			Price:         500000,
			PriceDiscount: utils.Ptr(400000),
			Rating:        4.8,
			TotalReviews:  214,
			Facilities:    "<p>Boat, gear, lunch</p>",
			Address:       "Toya Pakeh Harbor",
			Province:      "Bali",
			City:          "Klungkung",
		},
	}
	for _, activity := range activities {
		if err := db.Where(model.Activity{Slug: activity.Slug}).FirstOrCreate(&activity).Error; err != nil {
			log.Println("failed to seed activity:", activity.Title, "error:", err)
		}
	}
}
