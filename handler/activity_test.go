package handler

import (
	"context"
	"testing"

	"travel_booking/listing"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadActivities(t *testing.T, c *listing.Controller[model.Activity], rows []model.Activity) {
	t.Helper()
	_, err := c.Load(context.Background(), func(context.Context) ([]model.Activity, error) {
		return rows, nil
	})
	require.NoError(t, err)
}

func TestActivitySearchCoversDescription(t *testing.T) {
	c := listing.NewController(activityListingConfig())
	loadActivities(t, c, []model.Activity{
		{DTO: model.DTO{ID: 1}, Title: "Beach Walk", Description: "Morning stroll"},
		{DTO: model.DTO{ID: 2}, Title: "Island Day Trip", Description: "Includes a private beach stop"},
		{DTO: model.DTO{ID: 3}, Title: "Mountain Hike", Description: "Forest trails"},
	})

	view := c.SetSearchTerm("beach")
	require.Len(t, view, 2)
	assert.Equal(t, uint(1), view[0].ID)
	assert.Equal(t, uint(2), view[1].ID)
}

func TestActivitySearchCoversCityAndProvince(t *testing.T) {
	c := listing.NewController(activityListingConfig())
	loadActivities(t, c, []model.Activity{
		{DTO: model.DTO{ID: 1}, Title: "Snorkeling", City: "Denpasar", Province: "Bali"},
		{DTO: model.DTO{ID: 2}, Title: "Temple Tour", City: "Yogyakarta", Province: "DIY"},
	})

	assert.Len(t, c.SetSearchTerm("bali"), 1)
	assert.Len(t, c.SetSearchTerm("yogya"), 1)
}

func TestActivityListingSortsByEffectivePrice(t *testing.T) {
	c := listing.NewController(activityListingConfig())
	loadActivities(t, c, []model.Activity{
		{DTO: model.DTO{ID: 1}, Price: 500000, PriceDiscount: utils.Ptr(100000)},
		{DTO: model.DTO{ID: 2}, Price: 200000},
		{DTO: model.DTO{ID: 3}, Price: 300000, PriceDiscount: utils.Ptr(250000)},
	})

	view := c.SetSort("price-low")
	require.Len(t, view, 3)
	assert.Equal(t, uint(1), view[0].ID)
	assert.Equal(t, uint(2), view[1].ID)
	assert.Equal(t, uint(3), view[2].ID)
}

func TestActivityListingFiltersByCategory(t *testing.T) {
	c := listing.NewController(activityListingConfig())
	loadActivities(t, c, []model.Activity{
		{DTO: model.DTO{ID: 1}, CategoryId: 1},
		{DTO: model.DTO{ID: 2}, CategoryId: 2},
		{DTO: model.DTO{ID: 3}, CategoryId: 1},
	})

	assert.Len(t, c.SetFilter("categoryId", "1"), 2)
	assert.Len(t, c.SetFilter("categoryId", listing.FilterAll), 3)
}
