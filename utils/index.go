package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

// SearchClause builds the case-insensitive substring condition over the
// given columns, OR-joined.
func SearchClause(columns ...string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+col+") LIKE LOWER(?)")
	}
	return strings.Join(parts, " OR ")
}

// ApplySearch constrains the query to rows where any of the columns
// contains searchKey, case-insensitive. Empty searchKey is a no-op.
func ApplySearch(query *gorm.DB, searchKey string, columns ...string) *gorm.DB {
	if searchKey == "" || len(columns) == 0 {
		return query
	}
	like := "%" + searchKey + "%"
	args := make([]interface{}, len(columns))
	for i := range columns {
		args[i] = like
	}
	return query.Where(SearchClause(columns...), args...)
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
