package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/controllers"
	"github.com/yeremiapane/restaurant-order-api/middlewares"
	"github.com/yeremiapane/restaurant-order-api/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	orderCtrl := controllers.NewOrderController(db)
	cartCtrl := controllers.NewCartController(db)

	auth := router.Group("/")
	auth.Use(middlewares.UserAuth())
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders/my-orders", orderCtrl.GetMyOrders)
	auth.POST("/cart/add-to-cart", cartCtrl.AddToCart)
	return router
}

// The stored order must echo the client's items and total exactly -
// the server does not recompute prices from the catalog.
func TestCreateOrderStoresClientSnapshot(t *testing.T) {
	db := setupTestDB(t, "order_test")
	router := setupOrderRouter(db)

	user := seedUser(t, db, "order@example.com")
	burger := seedMenuItem(t, db, "Burger", 99.99) // catalog price differs on purpose
	coffee := seedMenuItem(t, db, "Coffee", 99.99)
	token := userToken(t, user.ID)

	w := doJSON(t, router, "POST", "/orders", token, map[string]interface{}{
		"customerName":  "Test User",
		"address":       "1 Main St",
		"phone":         "555-0104",
		"paymentMethod": models.PaymentMethodCash,
		"totalPrice":    25.0,
		"items": []map[string]interface{}{
			{"item": burger.ID, "name": "Burger", "price": 10.0, "quantity": 2},
			{"item": coffee.ID, "name": "Coffee", "price": 5.0, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/orders/my-orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	orders := resp["data"].([]interface{})
	assert.Len(t, orders, 1)

	order := orders[0].(map[string]interface{})
	assert.Equal(t, 25.0, order["total_price"])
	assert.Equal(t, models.OrderPending, order["status"])
	assert.Equal(t, models.PaymentStatusPending, order["payment_status"])

	items := order["items"].([]interface{})
	assert.Len(t, items, 2)
	firstItem := items[0].(map[string]interface{})
	assert.Equal(t, "Burger", firstItem["name"])
	assert.Equal(t, 10.0, firstItem["price"])
	assert.Equal(t, 2.0, firstItem["quantity"])
}

// Placing an order clears the cart no matter the payment method.
func TestCreateOrderClearsCart(t *testing.T) {
	db := setupTestDB(t, "order_cart_test")
	router := setupOrderRouter(db)

	user := seedUser(t, db, "ordercart@example.com")
	item := seedMenuItem(t, db, "Pasta", 14.0)
	token := userToken(t, user.ID)

	doJSON(t, router, "POST", "/cart/add-to-cart", token, map[string]interface{}{"productId": item.ID})
	doJSON(t, router, "POST", "/cart/add-to-cart", token, map[string]interface{}{"productId": item.ID})

	w := doJSON(t, router, "POST", "/orders", token, map[string]interface{}{
		"customerName":  "Test User",
		"address":       "1 Main St",
		"phone":         "555-0105",
		"paymentMethod": models.PaymentMethodStripe,
		"totalPrice":    28.0,
		"items": []map[string]interface{}{
			{"item": item.ID, "name": "Pasta", "price": 14.0, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderRejectsUnknownPaymentMethod(t *testing.T) {
	db := setupTestDB(t, "order_method_test")
	router := setupOrderRouter(db)

	user := seedUser(t, db, "method@example.com")

	w := doJSON(t, router, "POST", "/orders", userToken(t, user.ID), map[string]interface{}{
		"customerName":  "Test User",
		"address":       "1 Main St",
		"phone":         "555-0106",
		"paymentMethod": "Barter",
		"totalPrice":    5.0,
		"items": []map[string]interface{}{
			{"item": 1, "name": "Toast", "price": 5.0, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
