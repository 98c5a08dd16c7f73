package controllers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/config"
	"github.com/yeremiapane/restaurant-order-api/models"
	"github.com/yeremiapane/restaurant-order-api/utils"
)

const menuUploadDir = "public/uploads/menu_images"

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

// Login checks the single configured admin credential. Both
// comparisons are constant-time and both always run, so response
// timing says nothing about which half matched.
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(ac.Cfg.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.Cfg.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(0, "admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin logged in: %s", req.Email)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"email": req.Email,
		"role":  "admin",
	})
}

/* =====================================================
   MENU MANAGEMENT
===================================================== */

func (ac *AdminController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := ac.DB.Order("created_at desc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// saveMenuImage stores an uploaded image under the public uploads
// directory and returns its serving path.
func saveMenuImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(menuUploadDir, 0755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(menuUploadDir, filename)); err != nil {
		return "", err
	}

	return "/uploads/menu_images/" + filename, nil
}

// AddMenuItem creates a catalog entry from a multipart form. The
// image is required on create.
func (ac *AdminController) AddMenuItem(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	if name == "" || category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and category are required"))
		return
	}
	if !models.ValidCategory(category) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid category %q", category))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
		return
	}

	prepTime := 0
	if v := c.PostForm("prep_time"); v != "" {
		if prepTime, err = strconv.Atoi(v); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid prep_time"))
			return
		}
	}

	available := true
	if v := c.PostForm("available"); v != "" {
		if available, err = strconv.ParseBool(v); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid available flag"))
			return
		}
	}

	image, err := saveMenuImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image is required"))
		return
	}

	item := models.MenuItem{
		Name:        name,
		Category:    category,
		Price:       price,
		Image:       image,
		Description: c.PostForm("description"),
		PrepTime:    prepTime,
		Available:   available,
	}

	if err := ac.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem applies the form fields that are present, including
// an optional replacement image.
func (ac *AdminController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := ac.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		item.Name = v
	}
	if v, ok := c.GetPostForm("category"); ok {
		if !models.ValidCategory(v) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid category %q", v))
			return
		}
		item.Category = v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
			return
		}
		item.Price = price
	}
	if v, ok := c.GetPostForm("description"); ok {
		item.Description = v
	}
	if v, ok := c.GetPostForm("prep_time"); ok {
		prepTime, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid prep_time"))
			return
		}
		item.PrepTime = prepTime
	}
	if v, ok := c.GetPostForm("available"); ok {
		available, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid available flag"))
			return
		}
		item.Available = available
	}

	if _, err := c.FormFile("image"); err == nil {
		image, err := saveMenuImage(c)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		item.Image = image
	}

	if err := ac.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := ac.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := ac.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}

/* =====================================================
   BOOKINGS MANAGEMENT
===================================================== */

func (ac *AdminController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := ac.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	}).Order("booking_date_time desc").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// UpdateBookingStatus sets the booking status. Transitions are not
// validated beyond the enum; any of the three states can follow any
// other.
func (ac *AdminController) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=Pending Confirmed Cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var booking models.Booking
	if err := ac.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}

	booking.Status = req.Status
	if err := ac.DB.Save(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

func (ac *AdminController) DeleteBooking(c *gin.Context) {
	var booking models.Booking
	if err := ac.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}

	if err := ac.DB.Delete(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking deleted", gin.H{"id": booking.ID})
}

/* =====================================================
   ORDERS MANAGEMENT
===================================================== */

func (ac *AdminController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := ac.DB.Preload("Items").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus edits the fulfillment axis only. There is no
// admin path to paymentStatus; Cash orders stay payment-Pending until
// handled out of band.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=Pending 'In Progress' Rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := ac.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	order.Status = req.Status
	if err := ac.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (ac *AdminController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := ac.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := ac.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"id": order.ID})
}

/* =====================================================
   USER MANAGEMENT
===================================================== */

func (ac *AdminController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("created_at desc").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := ac.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := ac.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"id": user.ID})
}
