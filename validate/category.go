package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
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

		c.Locals("inputCreateCategory", input)
		return c.Next()
	}
}

func EditCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category id must be a number", errors.New("params invalid"))
		}

		var input model.EditCategoryInput
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

		c.Locals("inputEditCategory", input)
		c.Locals("categoryId", uint(valueKey))
		return c.Next()
	}
}
