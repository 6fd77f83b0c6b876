package helper

import (
	"log"
	"time"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"

	"github.com/robfig/cron/v3"
)

var expiryScheduler *cron.Cron

func StartTransactionExpiryScheduler() {
	expiryScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := expiryScheduler.AddFunc("*/5 * * * *", CancelExpiredTransactions)
	if err != nil {
		log.Printf("Failed to start transaction expiry scheduler: %v", err)
		return
	}

	expiryScheduler.Start()
	log.Println("Transaction expiry scheduler started (every 5 minutes)")
}

func StopTransactionExpiryScheduler() {
	if expiryScheduler != nil {
		expiryScheduler.Stop()
		log.Println("Transaction expiry scheduler stopped")
	}
}

// CancelExpiredTransactions cancels transactions still waiting for payment
// past their deadline. Proof of payment moves a transaction to pending, so
// only waiting-for-payment rows are eligible.
func CancelExpiredTransactions() {
	now := time.Now()
	result := database.DB.Model(&model.Transaction{}).
		Where("status = ? AND pay_before IS NOT NULL AND pay_before < ?", constants.STATUS_WAITING_PAYMENT, now).
		Update("status", constants.STATUS_CANCELED)

	if result.Error != nil {
		log.Printf("Failed to cancel expired transactions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Canceled %d expired transactions", result.RowsAffected)
	}
}
