package main

import (
	"log"

	"travel_booking/config"
	"travel_booking/database"
	"travel_booking/helper"
	"travel_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	cld := helper.InitCloudinary()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("cld", cld)
		return c.Next()
	})

	helper.StartTransactionExpiryScheduler()
	defer helper.StopTransactionExpiryScheduler()
	helper.StartPromoStatusScheduler()
	defer helper.StopPromoStatusScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
