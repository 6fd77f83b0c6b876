package model

import (
	"time"

	"travel_booking/constants"
)

type Transaction struct {
	DTO
	InvoiceId       string            `gorm:"uniqueIndex;size:30" json:"invoiceId"`
	UserId          uint              `gorm:"not null;index" json:"userId"`
	User            User              `gorm:"foreignKey:UserId" json:"user"`
	Status          string            `gorm:"not null;default:'waiting-for-payment'" json:"status"`
	PaymentMethod   string            `json:"paymentMethod"`
	ProofPaymentUrl *string           `json:"proofPaymentUrl"`
	Amount          int               `json:"amount"`
	PayBefore       *time.Time        `json:"payBefore"`
	Items           []TransactionItem `gorm:"foreignKey:TransactionId" json:"items"`
}

type Transactions []Transaction

// TransactionItem snapshots the purchased activity so later catalog edits
// do not change a settled invoice.
type TransactionItem struct {
	DTO
	TransactionId uint     `gorm:"not null;index" json:"transactionId"`
	ActivityId    uint     `gorm:"not null;index" json:"activityId"`
	Activity      Activity `gorm:"foreignKey:ActivityId" json:"activity"`
	Title         string   `json:"title"`
	ImageUrl      string   `json:"imageUrl"`
	Price         int      `json:"price"`
	PriceDiscount *int     `json:"price_discount"`
	Quantity      int      `gorm:"not null" json:"quantity"`
}

type CreateTransactionInput struct {
	CartIds       []uint `validate:"required,min=1" json:"cartIds"`
	PaymentMethod string `validate:"required" json:"paymentMethod"`
}

type UpdateTransactionStatusInput struct {
	Status string `validate:"required,oneof=pending waiting-for-confirmation success failed canceled" json:"status"`
}

type ProofPaymentInput struct {
	ProofPaymentUrl string `validate:"required,url" json:"proofPaymentUrl"`
}

type FilterTransaction struct {
	Pagination
	SearchKey string  `query:"searchKey"`
	Status    *string `query:"status"`
}

var statusTransitions = map[string][]string{
	constants.STATUS_WAITING_PAYMENT:      {constants.STATUS_PENDING, constants.STATUS_CANCELED},
	constants.STATUS_PENDING:              {constants.STATUS_WAITING_CONFIRMATION, constants.STATUS_CANCELED},
	constants.STATUS_WAITING_CONFIRMATION: {constants.STATUS_SUCCESS, constants.STATUS_FAILED, constants.STATUS_CANCELED},
}

// IsFinalStatus reports whether no further transition is permitted.
func IsFinalStatus(status string) bool {
	switch status {
	case constants.STATUS_SUCCESS, constants.STATUS_FAILED, constants.STATUS_CANCELED:
		return true
	}
	return false
}

// CanTransition reports whether the workflow allows moving from one status
// to another. Same-status is never a transition.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
