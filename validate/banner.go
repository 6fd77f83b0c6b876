package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBanner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBannerInput
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

		c.Locals("inputCreateBanner", input)
		return c.Next()
	}
}

func EditBanner(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Banner id must be a number", errors.New("params invalid"))
		}

		var input model.EditBannerInput
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

		c.Locals("inputEditBanner", input)
		c.Locals("bannerId", uint(valueKey))
		return c.Next()
	}
}
