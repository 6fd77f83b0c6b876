package handler

import (
	"errors"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/helper"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetLoggedUser(c *fiber.Ctx) error {
	user, err := helper.GetLoggedUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetAllUsers(c *fiber.Ctx) error {
	filter := new(model.FilterUser)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	users := model.Users{}
	query := database.DB.Model(&model.User{})

	query = utils.ApplySearch(query, filter.SearchKey, "name", "email", "phone_number")
	if filter.Role != nil && *filter.Role != "" && *filter.Role != "all" {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Order("id").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateRole(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateRole").(model.UpdateRoleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update role input fail"))
	}
	userId, ok := c.Locals("targetUserId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse target user id fail"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := database.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func EditProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditProfile").(model.EditProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse edit profile input fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	var user model.User
	if err := database.DB.First(&user, tokenClaim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := helper.GetUserByEmail(*input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email already registered"))
		}
	}

	copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
