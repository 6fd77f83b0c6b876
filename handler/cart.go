package handler

import (
	"errors"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/helper"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCarts(c *fiber.Ctx) error {
	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	carts := model.Carts{}
	if err := database.DB.Preload("Activity").Preload("Activity.Category").
		Where("user_id = ?", tokenClaim.UserId).Order("id").Find(&carts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":   carts,
		"amount": helper.CartAmount(carts),
	})
}

// AddToCart stores the requested quantity one unit at a time. A failure
// mid-batch keeps the units already stored and reports where it stopped.
func AddToCart(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddCart").(model.AddCartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse add cart input fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	var cart model.Cart
	err := database.DB.Where("user_id = ? AND activity_id = ?", tokenClaim.UserId, input.ActivityId).First(&cart).Error
	isNew := err != nil

	result := model.CartAddResult{}
	for i := 0; i < input.Quantity; i++ {
		if isNew {
			cart = model.Cart{
				UserId:     tokenClaim.UserId,
				ActivityId: input.ActivityId,
				Quantity:   1,
			}
			if err := database.DB.Create(&cart).Error; err != nil {
				result.FailedAt = utils.Ptr(i)
				break
			}
			isNew = false
		} else {
			if err := database.DB.Model(&cart).Update("quantity", cart.Quantity+1).Error; err != nil {
				result.FailedAt = utils.Ptr(i)
				break
			}
			cart.Quantity++
		}
		result.SucceededCount++
	}

	if result.FailedAt != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "partial",
			"data":   result,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func UpdateCart(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateCart").(model.UpdateCartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update cart input fail"))
	}
	cartId, ok := c.Locals("cartId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cart id fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	var cart model.Cart
	if err := database.DB.Where("id = ? AND user_id = ?", cartId, tokenClaim.UserId).First(&cart).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := database.DB.Model(&cart).Update("quantity", input.Quantity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func DeleteCart(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse delete ids fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	if err := database.DB.Where("user_id = ? AND id IN ?", tokenClaim.UserId, ids.IDs).
		Delete(&model.Cart{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(ids.IDs),
	})
}
