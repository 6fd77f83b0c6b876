package helper

import (
	"log"
	"time"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var promoScheduler gocron.Scheduler

func AutoExpirePromos() {
	log.Println("[CRON] AutoExpirePromos triggered")

	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	result := db.Model(&model.Promo{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", constants.PROMO_ACTIVE, today).
		Update("status", constants.PROMO_EXPIRED)

	if result.Error != nil {
		log.Printf("Failed to expire promos: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d promos expired", result.RowsAffected)
	}
}

func StartPromoStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	promoScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoExpirePromos),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Promo status scheduler started (00:05 daily)")
}

func StopPromoStatusScheduler() {
	if promoScheduler != nil {
		if err := promoScheduler.Shutdown(); err != nil {
			log.Printf("Promo status scheduler shutdown: %v", err)
		}
	}
}
