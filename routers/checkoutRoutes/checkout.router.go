package checkoutRoutes

import (
	controllers "lms/controllers/checkout"
	"lms/middleware"
	validators "lms/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

// SetupCheckoutRoutes sets up order creation and the gateway return URLs.
// The return endpoints stay public, the gateways redirect the browser there.
func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout")

	checkoutGroup.Post("/orders", middleware.JWTMiddleware, validators.CreateOrder(), controllers.CreateOrder)
	checkoutGroup.Get("/orders", middleware.JWTMiddleware, controllers.MyOrders)

	checkoutGroup.Get("/momo/return", controllers.MomoReturn)
	checkoutGroup.Get("/vnpay/return", controllers.VnpayReturn)
}
