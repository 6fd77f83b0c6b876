package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/form"
	"travel_booking/helper"
	"travel_booking/listing"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

const placeholderImageUrl = "https://placehold.co/600x400?text=No+Image"

func GetActivities(c *fiber.Ctx) error {
	filter := new(model.FilterActivity)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	activities := model.Activities{}
	query := database.DB.Model(&model.Activity{}).Preload("Category")

	query = utils.ApplySearch(query, filter.SearchKey, "title", "description", "city", "province")
	if filter.CategoryId != 0 {
		query = query.Where("category_id = ?", filter.CategoryId)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	switch filter.SortBy {
	case "popularity":
		query = query.Order("total_reviews DESC")
	case "rating":
		query = query.Order("rating DESC")
	case "price-low":
		query = query.Order("COALESCE(price_discount, price) ASC")
	case "price-high":
		query = query.Order("COALESCE(price_discount, price) DESC")
	default:
		query = query.Order("id")
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       activities,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetActivityById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse activity id fail"))
	}

	var activity model.Activity
	if err := database.DB.Preload("Category").First(&activity, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func GetActivityBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("slug is required"))
	}

	var activity model.Activity
	if err := database.DB.Preload("Category").Where("slug = ?", slug).First(&activity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func GetActivitiesByCategory(c *fiber.Ctx) error {
	categoryId, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	activities := model.Activities{}
	if err := database.DB.Preload("Category").Where("category_id = ?", categoryId).Order("id").Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, activities)
}

// activityListingConfig drives the in-memory browse view. Search covers
// title, description, city and province.
func activityListingConfig() listing.Config[model.Activity] {
	return listing.Config[model.Activity]{
		SearchFields: func(a model.Activity) []string {
			return []string{a.Title, a.Description, a.City, a.Province}
		},
		FilterValue: func(a model.Activity, key string) string {
			switch key {
			case "categoryId":
				return strconv.FormatUint(uint64(a.CategoryId), 10)
			case "province":
				return a.Province
			case "city":
				return a.City
			}
			return ""
		},
		Sorters: map[string]func(a, b model.Activity) bool{
			"popularity": func(a, b model.Activity) bool { return a.TotalReviews > b.TotalReviews },
			"rating":     func(a, b model.Activity) bool { return a.Rating > b.Rating },
			"price-low": func(a, b model.Activity) bool {
				return helper.EffectivePrice(a.Price, a.PriceDiscount) < helper.EffectivePrice(b.Price, b.PriceDiscount)
			},
			"price-high": func(a, b model.Activity) bool {
				return helper.EffectivePrice(a.Price, a.PriceDiscount) > helper.EffectivePrice(b.Price, b.PriceDiscount)
			},
		},
		PageSize: 9,
	}
}

// SearchActivities serves the browse view: the full collection is loaded once,
// then searched, filtered, sorted and paged in memory so the page count always
// matches the filtered set.
func SearchActivities(c *fiber.Ctx) error {
	controller := listing.NewController(activityListingConfig())

	if _, err := controller.Load(c.Context(), func(ctx context.Context) ([]model.Activity, error) {
		activities := model.Activities{}
		if err := database.DB.WithContext(ctx).Preload("Category").Order("id").Find(&activities).Error; err != nil {
			return nil, err
		}
		return activities, nil
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	controller.SetSearchTerm(c.Query("searchKey"))
	if v := c.Query("categoryId"); v != "" {
		controller.SetFilter("categoryId", v)
	}
	if v := c.Query("province"); v != "" {
		controller.SetFilter("province", v)
	}
	if v := c.Query("city"); v != "" {
		controller.SetFilter("city", v)
	}
	if v := c.Query("sortBy"); v != "" {
		controller.SetSort(v)
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		controller.SetPageSize(v)
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		controller.GoToPage(v)
	}

	window := controller.PageWindow()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":        controller.DerivedView(),
		"page":        controller.CurrentPage(),
		"totalPages":  controller.TotalPages(),
		"totalCount":  controller.FilteredCount(),
		"pageNumbers": window.Pages,
		"pageWindow":  window,
	})
}

func CreateActivity(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateActivity").(model.CreateActivityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create activity input fail"))
	}

	newActivity := new(model.Activity)
	copier.Copy(&newActivity, &input)
	newActivity.Slug = helper.GenerateUniqueActivitySlug(database.DB, input.Title)
	newActivity.ImageUrls = form.NormalizeRows(input.ImageUrls, placeholderImageUrl)
	if input.Rating != nil {
		newActivity.Rating = *input.Rating
	} else {
		newActivity.Rating = 4
	}

	if err := database.DB.Create(&newActivity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if err := database.DB.Preload("Category").First(&newActivity, newActivity.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newActivity)
}

func EditActivity(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditActivity").(model.EditActivityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse edit activity input fail"))
	}
	activityId, ok := c.Locals("activityId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse activity id fail"))
	}

	var activity model.Activity
	if err := database.DB.First(&activity, activityId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.Title != nil && *input.Title != activity.Title {
		activity.Slug = helper.GenerateUniqueActivitySlug(database.DB, *input.Title)
	}

	copier.CopyWithOption(&activity, &input, copier.Option{IgnoreEmpty: true})

	if input.ImageUrls != nil {
		activity.ImageUrls = form.NormalizeRows(*input.ImageUrls, placeholderImageUrl)
	}
	if input.PriceDiscount != nil {
		activity.PriceDiscount = input.PriceDiscount
	}

	if err := database.DB.Save(&activity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := database.DB.Preload("Category").First(&activity, activity.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func DeleteActivity(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse delete ids fail"))
	}

	var count int64
	if err := database.DB.Model(&model.Activity{}).Where("id IN ?", ids.IDs).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count != int64(len(ids.IDs)) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, fmt.Errorf("want %d records, found %d", len(ids.IDs), count))
	}

	if err := database.DB.Delete(&model.Activity{}, ids.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(ids.IDs),
	})
}
