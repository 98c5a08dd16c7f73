package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-api/controllers"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/user/register", userCtrl.Register)
	router.POST("/user/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t, "users_test")
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/user/register", "", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])

	w = doJSON(t, router, "POST", "/user/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	resp = decodeResponse(t, w)
	data = resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t, "users_dup_test")
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Test User",
		"email":    "dup@example.com",
		"password": "password123",
	}

	w := doJSON(t, router, "POST", "/user/register", "", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/user/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t, "users_badpass_test")
	router := setupUserRouter(db)

	seedUser(t, db, "known@example.com")

	w := doJSON(t, router, "POST", "/user/login", "", map[string]string{
		"email":    "known@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
