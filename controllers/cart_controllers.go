package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/models"
	"github.com/yeremiapane/restaurant-order-api/utils"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

type cartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// respondCart returns the caller's cart with every product resolved
// to the current catalog row - live prices, not snapshots.
func (cc *CartController) respondCart(c *gin.Context, userID uint) {
	var items []models.CartItem
	if err := cc.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{"cart": items})
}

// AddToCart increments the entry for the product, creating it at
// quantity 1 if absent. Repeated calls keep incrementing.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.MenuItem
	if err := cc.DB.First(&product, req.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var item models.CartItem
	err := cc.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.ProductID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity++
		if err := cc.DB.Save(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:     userID,
			MenuItemID: req.ProductID,
			Quantity:   1,
		}
		if err := cc.DB.Create(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.respondCart(c, userID)
}

// DecreaseQuantity decrements the entry; at zero the entry goes away
// entirely. A product not in the cart is 404.
func (cc *CartController) DecreaseQuantity(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.CartItem
	if err := cc.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.ProductID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("item not found in cart"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item.Quantity--
	if item.Quantity <= 0 {
		if err := cc.DB.Delete(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	} else {
		if err := cc.DB.Save(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	cc.respondCart(c, userID)
}

// RemoveFromCart drops the entry regardless of quantity. Removing a
// product that is not there is a no-op.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.ProductID).
		Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.respondCart(c, userID)
}

func (cc *CartController) GetCart(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	cc.respondCart(c, userID)
}
