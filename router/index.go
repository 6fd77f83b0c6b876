package router

import (
	"travel_booking/handler"
	"travel_booking/middleware"
	"travel_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/refresh-token", handler.RefreshToken)

	user := v1.Group("/user", logger.New())
	user.Get("/me", middleware.Protected(), handler.GetLoggedUser)
	user.Put("/me", middleware.Protected(), validate.EditProfile(), handler.EditProfile)
	user.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAllUsers)
	user.Patch("/:userId/role", middleware.Protected(), middleware.AdminOnly(), validate.UpdateRole("userId"), handler.UpdateRole)

	category := v1.Group("/category", logger.New())
	category.Get("/", handler.GetCategories)
	category.Get("/:categoryId", validate.GetById("categoryId"), handler.GetCategoryById)
	category.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), middleware.AdminOnly(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteCategory)

	activity := v1.Group("/activity", logger.New())
	activity.Get("/", handler.GetActivities)
	activity.Get("/search", handler.SearchActivities)
	activity.Get("/slug/:slug", handler.GetActivityBySlug)
	activity.Get("/category/:categoryId", handler.GetActivitiesByCategory)
	activity.Get("/:activityId", validate.GetById("activityId"), handler.GetActivityById)
	activity.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateActivity(), handler.CreateActivity)
	activity.Put("/:activityId", middleware.Protected(), middleware.AdminOnly(), validate.EditActivity("activityId"), handler.EditActivity)
	activity.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteActivity)

	banner := v1.Group("/banner", logger.New())
	banner.Get("/", handler.GetBanners)
	banner.Get("/:bannerId", validate.GetById("bannerId"), handler.GetBannerById)
	banner.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateBanner(), handler.CreateBanner)
	banner.Put("/:bannerId", middleware.Protected(), middleware.AdminOnly(), validate.EditBanner("bannerId"), handler.EditBanner)
	banner.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteBanner)

	promo := v1.Group("/promo", logger.New())
	promo.Get("/", handler.GetPromos)
	promo.Get("/:promoId", validate.GetById("promoId"), handler.GetPromoById)
	promo.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreatePromo(), handler.CreatePromo)
	promo.Put("/:promoId", middleware.Protected(), middleware.AdminOnly(), validate.EditPromo("promoId"), handler.EditPromo)
	promo.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeletePromo)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCarts)
	cart.Post("/", middleware.Protected(), validate.AddCart(), handler.AddToCart)
	cart.Put("/:cartId", middleware.Protected(), validate.UpdateCart("cartId"), handler.UpdateCart)
	cart.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCart)

	transaction := v1.Group("/transaction", logger.New())
	transaction.Get("/my", middleware.Protected(), handler.GetMyTransactions)
	transaction.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAllTransactions)
	transaction.Get("/:transactionId", middleware.Protected(), validate.GetById("transactionId"), handler.GetTransactionById)
	transaction.Post("/", middleware.Protected(), validate.CreateTransaction(), handler.CreateTransaction)
	transaction.Patch("/:transactionId/status", middleware.Protected(), middleware.AdminOnly(), validate.UpdateTransactionStatus("transactionId"), handler.UpdateTransactionStatus)
	transaction.Patch("/:transactionId/cancel", middleware.Protected(), validate.GetById("transactionId"), handler.CancelTransaction)
	transaction.Post("/:transactionId/proof-payment", middleware.Protected(), validate.ProofPayment("transactionId"), handler.ProofPayment)

	upload := v1.Group("/upload", logger.New())
	upload.Post("/image", middleware.Protected(), middleware.AdminOnly(), handler.UploadImage)
	upload.Post("/signature", middleware.Protected(), middleware.AdminOnly(), handler.GenerateUploadSignature)

	ws := v1.Group("/ws")
	ws.Get("/transactions", middleware.OptionalJWT(), websocket.New(handler.TransactionFeed))
}
