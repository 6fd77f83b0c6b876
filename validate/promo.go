package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/database"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePromo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromoInput
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

		// Promo codes are unique by convention; enforce on create.
		var count int64
		database.DB.Model(&model.Promo{}).Where("promo_code = ?", input.PromoCode).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Promo code already exists", fmt.Errorf("promo_code duplicated"), "promo_code")
		}

		c.Locals("inputCreatePromo", input)
		return c.Next()
	}
}

func EditPromo(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Promo id must be a number", errors.New("params invalid"))
		}

		var input model.EditPromoInput
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

		if input.PromoCode != nil {
			var count int64
			database.DB.Model(&model.Promo{}).Where("promo_code = ? AND id != ?", *input.PromoCode, valueKey).Count(&count)
			if count > 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Promo code already exists", fmt.Errorf("promo_code duplicated"), "promo_code")
			}
		}

		c.Locals("inputEditPromo", input)
		c.Locals("promoId", uint(valueKey))
		return c.Next()
	}
}
