package handler

import (
	"errors"
	"fmt"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCategories(c *fiber.Ctx) error {
	filter := new(model.FilterCategory)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	categories := model.Categories{}
	query := database.DB.Model(&model.Category{})

	query = utils.ApplySearch(query, filter.SearchKey, "name")

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Order("id").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       categories,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCategoryById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse category id fail"))
	}

	var category model.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create category input fail"))
	}

	newCategory := new(model.Category)
	copier.Copy(&newCategory, &input)

	if err := database.DB.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newCategory)
}

func EditCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCategory").(model.EditCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse edit category input fail"))
	}
	categoryId, ok := c.Locals("categoryId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse category id fail"))
	}

	var category model.Category
	if err := database.DB.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	copier.CopyWithOption(&category, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse delete ids fail"))
	}

	var inUse int64
	if err := database.DB.Model(&model.Activity{}).Where("category_id IN ?", ids.IDs).Count(&inUse).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if inUse > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_DELETE, fmt.Errorf("%d activities still reference these categories", inUse))
	}

	if err := database.DB.Delete(&model.Category{}, ids.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(ids.IDs),
	})
}
