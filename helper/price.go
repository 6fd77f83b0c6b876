package helper

import (
	"math"

	"travel_booking/model"
)

// EffectivePrice is the price a unit actually sells for: the discount
// price when one is set, the base price otherwise.
func EffectivePrice(price int, priceDiscount *int) int {
	if priceDiscount != nil {
		return *priceDiscount
	}
	return price
}

// DiscountPercent returns the rounded percentage saved against the base
// price, 0 when there is no discount or no base price.
func DiscountPercent(price int, priceDiscount *int) int {
	if priceDiscount == nil || price <= 0 || *priceDiscount >= price {
		return 0
	}
	return int(math.Round(float64(price-*priceDiscount) / float64(price) * 100))
}

// DeriveAmount recomputes a transaction total from its items. Used when
// the persisted amount is missing or zero so an invoice with items never
// shows a zero total.
func DeriveAmount(items []model.TransactionItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity * EffectivePrice(item.Price, item.PriceDiscount)
	}
	return total
}

// CartAmount totals cart rows against the current catalog prices.
func CartAmount(carts []model.Cart) int {
	total := 0
	for _, row := range carts {
		total += row.Quantity * EffectivePrice(row.Activity.Price, row.Activity.PriceDiscount)
	}
	return total
}
