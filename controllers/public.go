// controllers/public.go
package controllers

import (
	"errors"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderInput carries the order id a customer submits on the tracking form
type TrackOrderInput struct {
	OrderID string `json:"orderId" form:"orderId"`
}

// TrackOrder accepts an order id and redirects to its detail route
func TrackOrder(c *gin.Context) {
	var input TrackOrderInput
	if err := c.ShouldBind(&input); err != nil || input.OrderID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Order ID not provided")
		return
	}

	c.Redirect(http.StatusFound, "/track/"+input.OrderID)
}

// GetOrderDetails returns an order and its items for customer tracking.
// Read-only and unauthenticated.
func GetOrderDetails(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Customer").Preload("Shop").
		Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var items []models.OrderItem
	if err := config.DB.Preload("Service").Preload("CatalogItem").
		Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve order items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}
