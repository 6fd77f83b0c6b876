package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/constants"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
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

		// Password mismatch is a validation failure: no API call follows.
		if input.Password != input.PasswordRepeat {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD, errors.New("password mismatch"), "passwordRepeat")
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProfileInput
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

		c.Locals("inputEditProfile", input)
		return c.Next()
	}
}

func UpdateRole(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateRoleInput
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

		if !utils.IsValidValueOfConstant(input.Role, constants.ROLE) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROLE_NOT_EXISTS, nil)
		}

		c.Locals("inputUpdateRole", input)
		c.Locals("targetUserId", uint(valueKey))
		return c.Next()
	}
}
