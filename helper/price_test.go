package helper

import (
	"testing"

	"travel_booking/model"
	"travel_booking/utils"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 500000, EffectivePrice(500000, nil))
	assert.Equal(t, 400000, EffectivePrice(500000, utils.Ptr(400000)))
	assert.Equal(t, 0, EffectivePrice(500000, utils.Ptr(0)))
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 20, DiscountPercent(500000, utils.Ptr(400000)))
	assert.Equal(t, 33, DiscountPercent(150000, utils.Ptr(100000)))
	assert.Equal(t, 0, DiscountPercent(500000, nil))
	assert.Equal(t, 0, DiscountPercent(0, utils.Ptr(100)))
	assert.Equal(t, 0, DiscountPercent(100, utils.Ptr(100)))
	assert.Equal(t, 0, DiscountPercent(100, utils.Ptr(200)))
}

func TestDeriveAmount(t *testing.T) {
	items := []model.TransactionItem{
		{Quantity: 2, Price: 100000, PriceDiscount: utils.Ptr(80000)},
		{Quantity: 1, Price: 50000},
	}
	assert.Equal(t, 210000, DeriveAmount(items))
	assert.Equal(t, 0, DeriveAmount(nil))
}

func TestCartAmount(t *testing.T) {
	carts := []model.Cart{
		{Quantity: 3, Activity: model.Activity{Price: 100000, PriceDiscount: utils.Ptr(90000)}},
		{Quantity: 1, Activity: model.Activity{Price: 25000}},
	}
	assert.Equal(t, 295000, CartAmount(carts))
}
