package helper

import (
	"log"

	"travel_booking/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds the shared upload client from CLOUDINARY_* env
// credentials. Called once at startup; bad credentials are fatal.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cannot create Cloudinary client: %v", err)
	}
	return cld
}
