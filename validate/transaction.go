package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTransactionInput
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

		c.Locals("inputCreateTransaction", input)
		return c.Next()
	}
}

func UpdateTransactionStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Transaction id must be a number", errors.New("params invalid"))
		}

		var input model.UpdateTransactionStatusInput
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

		c.Locals("inputUpdateStatus", input)
		c.Locals("transactionId", uint(valueKey))
		return c.Next()
	}
}

func ProofPayment(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Transaction id must be a number", errors.New("params invalid"))
		}

		var input model.ProofPaymentInput
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

		c.Locals("inputProofPayment", input)
		c.Locals("transactionId", uint(valueKey))
		return c.Next()
	}
}
