package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchClause(t *testing.T) {
	assert.Equal(t, "LOWER(name) LIKE LOWER(?)", SearchClause("name"))
	assert.Equal(t,
		"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(phone_number) LIKE LOWER(?)",
		SearchClause("name", "email", "phone_number"))
	assert.Equal(t,
		"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?) OR LOWER(province) LIKE LOWER(?)",
		SearchClause("title", "description", "city", "province"))
	assert.Equal(t, "", SearchClause())
}
