// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	ShopID      *uuid.UUID      `json:"shopId"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice" binding:"required"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"basePrice"`
	IsActive    *bool            `json:"isActive"`
}

// CreateService creates a new service offering for a shop. Staff actors
// always create for their own shop.
func CreateService(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var shopID uuid.UUID
	if scope.IsAdmin {
		if input.ShopID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Shop ID is required")
			return
		}
		shopID = *input.ShopID
	} else {
		shopID = scope.Employee.ShopID
	}

	if input.BasePrice.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Base price must not be negative")
		return
	}

	service := models.Service{
		ShopID:      shopID,
		Name:        input.Name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		IsActive:    true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves services, scoped to the actor's shop for staff
func GetServices(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	query := config.DB
	if !scope.IsAdmin {
		query = query.Where("shop_id = ?", scope.Employee.ShopID)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	query := config.DB.Where("id = ?", serviceUUID)
	if !scope.IsAdmin {
		query = query.Where("shop_id = ?", scope.Employee.ShopID)
	}

	var service models.Service
	if err := query.First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	query := config.DB.Where("id = ?", serviceUUID)
	if !scope.IsAdmin {
		query = query.Where("shop_id = ?", scope.Employee.ShopID)
	}

	var service models.Service
	if err := query.First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.BasePrice != nil {
		if input.BasePrice.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Base price must not be negative")
			return
		}
		service.BasePrice = *input.BasePrice
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	query := config.DB.Where("id = ?", serviceUUID)
	if !scope.IsAdmin {
		query = query.Where("shop_id = ?", scope.Employee.ShopID)
	}

	if err := query.Delete(&models.Service{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
