package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/models"
	"github.com/yeremiapane/restaurant-order-api/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder places an order from client-supplied line items and
// total. Items are stored exactly as sent - name, price, quantity are
// a snapshot of what the client saw, and the total is not recomputed
// from the catalog. The caller's cart is cleared afterwards no matter
// which payment method was chosen; the clear is best-effort and never
// fails the order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req struct {
		CustomerName  string  `json:"customerName" binding:"required"`
		Address       string  `json:"address" binding:"required"`
		Phone         string  `json:"phone" binding:"required"`
		OrderNotes    string  `json:"orderNotes"`
		PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=Cash Stripe"`
		TotalPrice    float64 `json:"totalPrice" binding:"required,min=0"`
		Items         []struct {
			MenuItemID uint    `json:"item" binding:"required"`
			Name       string  `json:"name" binding:"required"`
			Price      float64 `json:"price" binding:"min=0"`
			Quantity   int     `json:"quantity" binding:"required,min=1"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		UserID:        userID,
		TotalPrice:    req.TotalPrice,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		Phone:         req.Phone,
		OrderNotes:    req.OrderNotes,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to clear cart for user %d after order #%d: %v", userID, order.ID, err)
	}

	utils.InfoLogger.Printf("Order #%d created (method=%s, total=%.2f)", order.ID, order.PaymentMethod, order.TotalPrice)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetMyOrders lists the caller's orders, newest first, items included.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My orders", orders)
}
