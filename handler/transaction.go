package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/helper"
	"travel_booking/model"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newInvoiceId() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), ref)
}

// CreateTransaction turns the selected cart rows into an invoice. Each item
// snapshots the activity at purchase time and the carts are consumed in the
// same database transaction.
func CreateTransaction(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTransaction").(model.CreateTransactionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create transaction input fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	carts := model.Carts{}
	if err := database.DB.Preload("Activity").
		Where("user_id = ? AND id IN ?", tokenClaim.UserId, input.CartIds).
		Find(&carts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(carts) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CART_EMPTY, errors.New("no cart rows match the given ids"))
	}

	items := make([]model.TransactionItem, 0, len(carts))
	for _, cart := range carts {
		items = append(items, model.TransactionItem{
			ActivityId:    cart.ActivityId,
			Title:         cart.Activity.Title,
			ImageUrl:      firstImageUrl(cart.Activity.ImageUrls),
			Price:         cart.Activity.Price,
			PriceDiscount: cart.Activity.PriceDiscount,
			Quantity:      cart.Quantity,
		})
	}

	payBefore := time.Now().Add(24 * time.Hour)
	transaction := model.Transaction{
		InvoiceId:     newInvoiceId(),
		UserId:        tokenClaim.UserId,
		Status:        constants.STATUS_WAITING_PAYMENT,
		PaymentMethod: input.PaymentMethod,
		Amount:        helper.DeriveAmount(items),
		PayBefore:     &payBefore,
		Items:         items,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND id IN ?", tokenClaim.UserId, input.CartIds).
			Delete(&model.Cart{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishTransactionEvent(TransactionEvent{
		TransactionId: transaction.ID,
		InvoiceId:     transaction.InvoiceId,
		UserId:        transaction.UserId,
		Status:        transaction.Status,
		Amount:        transaction.Amount,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

func firstImageUrl(urls []string) string {
	if len(urls) > 0 {
		return urls[0]
	}
	return placeholderImageUrl
}

func GetMyTransactions(c *fiber.Ctx) error {
	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	transactions := model.Transactions{}
	if err := database.DB.Preload("Items").
		Where("user_id = ?", tokenClaim.UserId).Order("id DESC").Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transactions)
}

func GetAllTransactions(c *fiber.Ctx) error {
	filter := new(model.FilterTransaction)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	transactions := model.Transactions{}
	query := database.DB.Model(&model.Transaction{}).Preload("Items").Preload("User")

	query = utils.ApplySearch(query, filter.SearchKey, "invoice_id")
	if filter.Status != nil && *filter.Status != "" && *filter.Status != "all" {
		query = query.Where("status = ?", *filter.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	if err := query.Order("id DESC").Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       transactions,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTransactionById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse transaction id fail"))
	}

	tokenClaim, isAdmin := helper.GetInfoUserFromToken(c)

	var transaction model.Transaction
	if err := database.DB.Preload("Items").Preload("User").First(&transaction, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && transaction.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("transaction belongs to another user"))
	}

	// Older rows may predate the stored amount column.
	if transaction.Amount == 0 {
		transaction.Amount = helper.DeriveAmount(transaction.Items)
	}

	var qr string
	if png, err := utils.GenerateQRCode(transaction.InvoiceId, 256); err == nil {
		qr = base64.StdEncoding.EncodeToString(png)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"transaction": transaction,
		"invoiceQr":   qr,
	})
}

func UpdateTransactionStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateStatus").(model.UpdateTransactionStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update status input fail"))
	}
	transactionId, ok := c.Locals("transactionId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse transaction id fail"))
	}

	var transaction model.Transaction
	if err := database.DB.Preload("Items").Preload("User").First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	// Older rows may predate the stored amount column.
	if transaction.Amount == 0 {
		transaction.Amount = helper.DeriveAmount(transaction.Items)
	}

	if transaction.Status == input.Status {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSACTION_STATUS_UNCHANGED, errors.New("already "+transaction.Status))
	}
	if model.IsFinalStatus(transaction.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSACTION_ALREADY_FINAL, fmt.Errorf("status is %s", transaction.Status))
	}
	if !model.CanTransition(transaction.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSACTION_STATUS_NOT_ALLOWED, fmt.Errorf("cannot move from %s to %s", transaction.Status, input.Status))
	}

	if err := database.DB.Model(&transaction).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	transaction.Status = input.Status

	PublishTransactionEvent(TransactionEvent{
		TransactionId: transaction.ID,
		InvoiceId:     transaction.InvoiceId,
		UserId:        transaction.UserId,
		Status:        transaction.Status,
		Amount:        transaction.Amount,
	})

	if input.Status == constants.STATUS_SUCCESS {
		go utils.SendReceiptEmail(transaction.User.Email, buildReceipt(transaction))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

func buildReceipt(transaction model.Transaction) utils.ReceiptData {
	items := make([]utils.ReceiptItem, 0, len(transaction.Items))
	for _, item := range transaction.Items {
		items = append(items, utils.ReceiptItem{
			Title:    item.Title,
			Quantity: item.Quantity,
			Subtotal: item.Quantity * helper.EffectivePrice(item.Price, item.PriceDiscount),
		})
	}
	amount := transaction.Amount
	if amount == 0 {
		amount = helper.DeriveAmount(transaction.Items)
	}
	return utils.ReceiptData{
		Name:          transaction.User.Name,
		InvoiceId:     transaction.InvoiceId,
		PaymentMethod: transaction.PaymentMethod,
		Amount:        amount,
		Items:         items,
		PaidAt:        time.Now().Format("02 Jan 2006 15:04"),
	}
}

// CancelTransaction lets the owner abandon an unfinished transaction.
func CancelTransaction(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse transaction id fail"))
	}

	tokenClaim, isAdmin := helper.GetInfoUserFromToken(c)

	var transaction model.Transaction
	if err := database.DB.Preload("Items").First(&transaction, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if transaction.Amount == 0 {
		transaction.Amount = helper.DeriveAmount(transaction.Items)
	}

	if !isAdmin && transaction.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("transaction belongs to another user"))
	}
	if model.IsFinalStatus(transaction.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSACTION_ALREADY_FINAL, fmt.Errorf("status is %s", transaction.Status))
	}

	if err := database.DB.Model(&transaction).Update("status", constants.STATUS_CANCELED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	transaction.Status = constants.STATUS_CANCELED

	PublishTransactionEvent(TransactionEvent{
		TransactionId: transaction.ID,
		InvoiceId:     transaction.InvoiceId,
		UserId:        transaction.UserId,
		Status:        transaction.Status,
		Amount:        transaction.Amount,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

// ProofPayment records the payment proof and moves the transaction from
// waiting-for-payment to pending for admin review.
func ProofPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputProofPayment").(model.ProofPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse proof payment input fail"))
	}
	transactionId, ok := c.Locals("transactionId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse transaction id fail"))
	}

	tokenClaim, _ := helper.GetInfoUserFromToken(c)

	var transaction model.Transaction
	if err := database.DB.Preload("Items").First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if transaction.Amount == 0 {
		transaction.Amount = helper.DeriveAmount(transaction.Items)
	}

	if transaction.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("transaction belongs to another user"))
	}
	if transaction.Status != constants.STATUS_WAITING_PAYMENT {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSACTION_STATUS_NOT_ALLOWED, fmt.Errorf("cannot attach proof while %s", transaction.Status))
	}

	updates := map[string]any{
		"proof_payment_url": input.ProofPaymentUrl,
		"status":            constants.STATUS_PENDING,
	}
	if err := database.DB.Model(&transaction).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	transaction.ProofPaymentUrl = &input.ProofPaymentUrl
	transaction.Status = constants.STATUS_PENDING

	PublishTransactionEvent(TransactionEvent{
		TransactionId: transaction.ID,
		InvoiceId:     transaction.InvoiceId,
		UserId:        transaction.UserId,
		Status:        transaction.Status,
		Amount:        transaction.Amount,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}
