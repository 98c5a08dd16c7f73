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

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	bookingCtrl := controllers.NewBookingController(db)

	booking := router.Group("/booking")
	booking.Use(middlewares.UserAuth())
	booking.POST("/create", bookingCtrl.CreateBooking)
	booking.GET("/my-bookings", bookingCtrl.GetMyBookings)
	return router
}

func TestCreateBookingAndListMine(t *testing.T) {
	db := setupTestDB(t, "booking_test")
	router := setupBookingRouter(db)

	user := seedUser(t, db, "booking@example.com")
	token := userToken(t, user.ID)

	w := doJSON(t, router, "POST", "/booking/create", token, map[string]interface{}{
		"date":     "2026-10-01",
		"time":     "19:30",
		"name":     "Test User",
		"phone":    "555-0101",
		"capacity": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.BookingPending, data["status"])

	w = doJSON(t, router, "GET", "/booking/my-bookings", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp = decodeResponse(t, w)
	bookings := resp["data"].([]interface{})
	assert.Len(t, bookings, 1)
}

// A second booking for the same exact slot must fail and leave the
// ledger unchanged, even from a different user.
func TestBookingSlotConflict(t *testing.T) {
	db := setupTestDB(t, "booking_conflict_test")
	router := setupBookingRouter(db)

	first := seedUser(t, db, "first@example.com")
	second := seedUser(t, db, "second@example.com")

	payload := map[string]interface{}{
		"date":     "2026-10-02",
		"time":     "20:00",
		"name":     "Holder",
		"phone":    "555-0102",
		"capacity": 2,
	}

	w := doJSON(t, router, "POST", "/booking/create", userToken(t, first.ID), payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/booking/create", userToken(t, second.ID), payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBookingInvalidDateTime(t *testing.T) {
	db := setupTestDB(t, "booking_baddate_test")
	router := setupBookingRouter(db)

	user := seedUser(t, db, "baddate@example.com")

	w := doJSON(t, router, "POST", "/booking/create", userToken(t, user.ID), map[string]interface{}{
		"date":     "not-a-date",
		"time":     "19:30",
		"name":     "Test User",
		"phone":    "555-0103",
		"capacity": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
