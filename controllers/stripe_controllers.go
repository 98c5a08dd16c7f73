package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/models"
	"github.com/yeremiapane/restaurant-order-api/services"
	"github.com/yeremiapane/restaurant-order-api/utils"
)

type StripeController struct {
	DB     *gorm.DB
	Stripe *services.StripeService
}

func NewStripeController(db *gorm.DB, stripeSvc *services.StripeService) *StripeController {
	return &StripeController{DB: db, Stripe: stripeSvc}
}

// CreateCheckoutSession opens a hosted payment session for an
// existing order and stores the session id on it. A synchronous
// Stripe failure surfaces to the caller and leaves the order alone.
func (sc *StripeController) CreateCheckoutSession(c *gin.Context) {
	var req struct {
		OrderID uint                    `json:"orderId" binding:"required"`
		Items   []services.CheckoutItem `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := sc.DB.First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sess, err := sc.Stripe.CreateCheckoutSession(order.ID, req.Items)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to create checkout session for order #%d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := sc.DB.Model(&order).Update("stripe_session_id", sess.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Checkout session %s opened for order #%d", sess.ID, order.ID)

	utils.RespondJSON(c, http.StatusOK, "Checkout session created", gin.H{"url": sess.URL})
}

// HandleWebhook reconciles asynchronous payment events. The raw body
// is read unparsed because the signature covers the exact bytes
// Stripe sent. After a valid signature the handler always
// acknowledges with 200 - even for unknown orders or event types -
// so the provider stops redelivering; the status updates themselves
// are plain sets, safe under duplicate and out-of-order delivery.
func (sc *StripeController) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	event, err := sc.Stripe.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		utils.ErrorLogger.Printf("Webhook signature verification failed: %v", err)
		utils.RespondError(c, http.StatusBadRequest, errors.New("webhook signature verification failed"))
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		if orderID, ok := eventOrderID(event); ok {
			if err := sc.DB.Model(&models.Order{}).
				Where("id = ?", orderID).
				Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
				utils.ErrorLogger.Printf("Failed to mark order #%d paid: %v", orderID, err)
			} else {
				utils.InfoLogger.Printf("Order #%d marked paid", orderID)
			}
		}

	case "payment_intent.payment_failed", "checkout.session.async_payment_failed":
		// Payment failure rejects the order - the one place the
		// fulfillment and payment axes are coupled. One update so the
		// pair can never be observed half-applied.
		if orderID, ok := eventOrderID(event); ok {
			if err := sc.DB.Model(&models.Order{}).
				Where("id = ?", orderID).
				Updates(map[string]interface{}{
					"payment_status": models.PaymentStatusFailed,
					"status":         models.OrderRejected,
				}).Error; err != nil {
				utils.ErrorLogger.Printf("Failed to mark order #%d failed: %v", orderID, err)
			} else {
				utils.InfoLogger.Printf("Order #%d payment failed, order rejected", orderID)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// eventOrderID digs the order id out of the event payload's metadata.
func eventOrderID(event stripe.Event) (uint, bool) {
	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return 0, false
	}

	id, err := strconv.ParseUint(object.Metadata["orderId"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
