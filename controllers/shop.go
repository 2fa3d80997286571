// controllers/shop.go
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

// CreateShopInput defines the expected JSON structure for creating a shop
type CreateShopInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateShopInput defines the expected JSON structure for updating a shop
type UpdateShopInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// CreateShop registers a new laundry shop
func CreateShop(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var input CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	shop := models.Shop{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}

	if err := config.DB.Create(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shop")
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// GetShops retrieves all shops
func GetShops(c *gin.Context) {
	var shops []models.Shop
	if err := config.DB.Find(&shops).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shops")
		return
	}

	c.JSON(http.StatusOK, shops)
}

// GetShop retrieves a specific shop by ID
func GetShop(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	var shop models.Shop
	if err := config.DB.Preload("Services").Where("id = ?", shopUUID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateShop updates an existing shop
func UpdateShop(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	var input UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ?", shopUUID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		shop.Phone = *input.Phone
	}
	if input.Email != nil {
		shop.Email = *input.Email
	}

	if err := config.DB.Save(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shop")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// DeleteShop soft deletes a shop
func DeleteShop(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	if err := config.DB.Where("id = ?", shopUUID).Delete(&models.Shop{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shop")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}
