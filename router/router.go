package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/config"
	"github.com/yeremiapane/restaurant-order-api/controllers"
	"github.com/yeremiapane/restaurant-order-api/middlewares"
	"github.com/yeremiapane/restaurant-order-api/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Menu images are served straight from the upload directory.
	r.Static("/uploads", "./public/uploads")

	stripeSvc := services.NewStripeService(cfg)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	bookingCtrl := controllers.NewBookingController(db)
	orderCtrl := controllers.NewOrderController(db)
	stripeCtrl := controllers.NewStripeController(db, stripeSvc)
	adminCtrl := controllers.NewAdminController(db, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/menu", menuCtrl.GetMenuItems)
	r.GET("/menu/:id", menuCtrl.GetMenuItemByID)

	user := r.Group("/user")
	user.Use(middlewares.NewStrictRateLimiter())
	{
		user.POST("/register", userCtrl.Register)
		user.POST("/login", userCtrl.Login)
	}

	// The webhook is unauthenticated on purpose: the caller is Stripe,
	// and the signature over the raw body is the credential.
	r.POST("/stripe/webhook", stripeCtrl.HandleWebhook)

	// ----------------------------------------------------------------
	//                      USER ROUTES
	// ----------------------------------------------------------------
	cart := r.Group("/cart")
	cart.Use(middlewares.UserAuth())
	{
		cart.POST("/add-to-cart", cartCtrl.AddToCart)
		cart.PUT("/decrease-quantity", cartCtrl.DecreaseQuantity)
		cart.DELETE("/remove-from-cart", cartCtrl.RemoveFromCart)
		cart.GET("/get-cart", cartCtrl.GetCart)
	}

	booking := r.Group("/booking")
	booking.Use(middlewares.UserAuth())
	{
		booking.POST("/create", bookingCtrl.CreateBooking)
		booking.GET("/my-bookings", bookingCtrl.GetMyBookings)
	}

	orders := r.Group("/orders")
	orders.Use(middlewares.UserAuth())
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/my-orders", orderCtrl.GetMyOrders)
	}

	stripeGroup := r.Group("/stripe")
	stripeGroup.Use(middlewares.UserAuth())
	{
		stripeGroup.POST("/create-checkout-session", stripeCtrl.CreateCheckoutSession)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	r.POST("/admin/login", adminCtrl.Login)

	admin := r.Group("/admin")
	admin.Use(middlewares.AdminAuth())
	{
		admin.GET("/menu", adminCtrl.GetAllMenuItems)
		admin.POST("/menu", adminCtrl.AddMenuItem)
		admin.PUT("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)

		admin.GET("/bookings", adminCtrl.GetAllBookings)
		admin.PUT("/bookings/:id", adminCtrl.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", adminCtrl.DeleteBooking)

		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.PUT("/orders/:id", adminCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)

		admin.GET("/users", adminCtrl.GetAllUsers)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}

	return r
}
