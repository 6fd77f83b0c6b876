package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"travel_booking/constants"
	"travel_booking/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// UploadImage stores a multipart image on Cloudinary and returns its URL.
// The Cloudinary client is injected once at startup via Locals.
func UploadImage(c *fiber.Ctx) error {
	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("cloudinary client not configured"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(c.Context(), reader, uploader.UploadParams{
		Folder:       "travel/images",
		PublicID:     fmt.Sprintf("img_%d", time.Now().UnixNano()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"imageUrl": result.SecureURL,
	})
}

// GenerateUploadSignature signs direct browser-to-Cloudinary uploads so the
// API secret never leaves the server.
func GenerateUploadSignature(c *fiber.Ctx) error {
	type sigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params sigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	paramMap := map[string]string{"timestamp": timestamp}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs raw key=value pairs, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
