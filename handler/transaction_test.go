package handler

import (
	"testing"

	"travel_booking/model"
	"travel_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceipt(t *testing.T) {
	transaction := model.Transaction{
		InvoiceId:     "INV-20260831-ABCDEF12",
		PaymentMethod: "bank-transfer",
		Amount:        210000,
		User:          model.User{Name: "Ayu"},
		Items: []model.TransactionItem{
			{Title: "Snorkeling", Quantity: 2, Price: 100000, PriceDiscount: utils.Ptr(80000)},
			{Title: "Temple Tour", Quantity: 1, Price: 50000},
		},
	}

	receipt := buildReceipt(transaction)
	assert.Equal(t, "Ayu", receipt.Name)
	assert.Equal(t, "INV-20260831-ABCDEF12", receipt.InvoiceId)
	assert.Equal(t, 210000, receipt.Amount)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, 160000, receipt.Items[0].Subtotal)
	assert.Equal(t, 50000, receipt.Items[1].Subtotal)
}

func TestBuildReceiptDerivesMissingAmount(t *testing.T) {
	// Rows written before the amount column must not produce a zero total.
	transaction := model.Transaction{
		User: model.User{Name: "Ayu"},
		Items: []model.TransactionItem{
			{Title: "Snorkeling", Quantity: 2, Price: 100000, PriceDiscount: utils.Ptr(80000)},
		},
	}

	receipt := buildReceipt(transaction)
	assert.Equal(t, 160000, receipt.Amount)
}

func TestFirstImageUrl(t *testing.T) {
	assert.Equal(t, "http://x.jpg", firstImageUrl([]string{"http://x.jpg", "http://y.jpg"}))
	assert.Equal(t, placeholderImageUrl, firstImageUrl(nil))
}

func TestNewInvoiceIdFitsColumn(t *testing.T) {
	id := newInvoiceId()
	assert.LessOrEqual(t, len(id), 30)
	assert.Regexp(t, `^INV-\d{8}-[0-9A-F]{8}$`, id)
}
