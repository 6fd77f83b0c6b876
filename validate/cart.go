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

func AddCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddCartInput
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

		// Quantity floor is 1 at every adjustment point.
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		var activity model.Activity
		if err := database.DB.First(&activity, input.ActivityId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Activity not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database error", err)
		}

		c.Locals("inputAddCart", input)
		return c.Next()
	}
}

func UpdateCart(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cart id must be a number", errors.New("params invalid"))
		}

		var input model.UpdateCartInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Quantity < 1 {
			input.Quantity = 1
		}

		c.Locals("inputUpdateCart", input)
		c.Locals("cartId", uint(valueKey))
		return c.Next()
	}
}
