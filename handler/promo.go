package handler

import (
	"errors"
	"time"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPromos(c *fiber.Ctx) error {
	filter := new(model.FilterPromo)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	promos := model.Promos{}
	query := database.DB.Model(&model.Promo{})

	query = utils.ApplySearch(query, filter.SearchKey, "title", "promo_code")

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Order("id").Find(&promos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       promos,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetPromoById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse promo id fail"))
	}

	var promo model.Promo
	if err := database.DB.First(&promo, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func CreatePromo(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePromo").(model.CreatePromoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create promo input fail"))
	}

	newPromo := new(model.Promo)
	copier.Copy(&newPromo, &input)
	newPromo.Status = constants.PROMO_ACTIVE
	if input.EndDate != nil && input.EndDate.Before(time.Now()) {
		newPromo.Status = constants.PROMO_EXPIRED
	}

	if err := database.DB.Create(&newPromo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newPromo)
}

func EditPromo(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditPromo").(model.EditPromoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse edit promo input fail"))
	}
	promoId, ok := c.Locals("promoId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse promo id fail"))
	}

	var promo model.Promo
	if err := database.DB.First(&promo, promoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	copier.CopyWithOption(&promo, &input, copier.Option{IgnoreEmpty: true})

	if input.EndDate != nil {
		promo.EndDate = input.EndDate
		if input.EndDate.Before(time.Now()) {
			promo.Status = constants.PROMO_EXPIRED
		} else {
			promo.Status = constants.PROMO_ACTIVE
		}
	}

	if err := database.DB.Save(&promo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func DeletePromo(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse delete ids fail"))
	}

	if err := database.DB.Delete(&model.Promo{}, ids.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(ids.IDs),
	})
}
