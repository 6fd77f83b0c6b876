package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/database"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateActivityInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var category model.Category
		if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", fmt.Errorf("categoryId not found"), "categoryId")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Database error: %s", err.Error()),
			})
		}

		if input.PriceDiscount != nil && *input.PriceDiscount > input.Price {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Discount price must not exceed price", fmt.Errorf("price_discount > price"), "price_discount")
		}

		c.Locals("inputCreateActivity", input)
		return c.Next()
	}
}

func EditActivity(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Activity id must be a number", errors.New("params invalid"))
		}

		var input model.EditActivityInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var activity model.Activity
		if err := database.DB.First(&activity, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Activity not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database error", err)
		}

		if input.CategoryId != nil {
			var category model.Category
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", fmt.Errorf("categoryId not found"), "categoryId")
			}
		}

		price := activity.Price
		if input.Price != nil {
			price = *input.Price
		}
		discount := activity.PriceDiscount
		if input.PriceDiscount != nil {
			discount = input.PriceDiscount
		}
		if discount != nil && *discount > price {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Discount price must not exceed price", fmt.Errorf("price_discount > price"), "price_discount")
		}

		c.Locals("inputEditActivity", input)
		c.Locals("activityId", uint(valueKey))
		return c.Next()
	}
}
