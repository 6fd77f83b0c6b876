package handler

import (
	"errors"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetBanners(c *fiber.Ctx) error {
	filter := new(model.FilterBanner)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	banners := model.Banners{}
	query := database.DB.Model(&model.Banner{})

	query = utils.ApplySearch(query, filter.SearchKey, "name")

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Order("id").Find(&banners).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       banners,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBannerById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse banner id fail"))
	}

	var banner model.Banner
	if err := database.DB.First(&banner, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, banner)
}

func CreateBanner(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateBanner").(model.CreateBannerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create banner input fail"))
	}

	newBanner := new(model.Banner)
	copier.Copy(&newBanner, &input)

	if err := database.DB.Create(&newBanner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newBanner)
}

func EditBanner(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditBanner").(model.EditBannerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse edit banner input fail"))
	}
	bannerId, ok := c.Locals("bannerId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse banner id fail"))
	}

	var banner model.Banner
	if err := database.DB.First(&banner, bannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	copier.CopyWithOption(&banner, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&banner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, banner)
}

func DeleteBanner(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse delete ids fail"))
	}

	if err := database.DB.Delete(&model.Banner{}, ids.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(ids.IDs),
	})
}
