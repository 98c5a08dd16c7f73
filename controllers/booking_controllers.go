package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/models"
	"github.com/yeremiapane/restaurant-order-api/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

const bookingSlotLayout = "2006-01-02 15:04"

// CreateBooking reserves the composed date+time slot. Availability is
// decided by the insert itself: a duplicate-key error from the unique
// index on booking_date_time means someone else holds the slot, so
// two racing requests can never both succeed.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req struct {
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Capacity int    `json:"capacity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	slot, err := time.ParseInLocation(bookingSlotLayout, fmt.Sprintf("%s %s", req.Date, req.Time), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date or time"))
		return
	}

	booking := models.Booking{
		UserID:          userID,
		BookingDateTime: slot,
		Capacity:        req.Capacity,
		Name:            req.Name,
		Phone:           req.Phone,
		Status:          models.BookingPending,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("this time slot is already reserved"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Booking #%d created for %s", booking.ID, slot.Format(bookingSlotLayout))

	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// GetMyBookings lists the caller's bookings, newest first.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var bookings []models.Booking
	if err := bc.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My bookings", bookings)
}
