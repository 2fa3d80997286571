// controllers/catalog_item.go
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

// CreateCatalogItemInput defines the expected JSON structure for creating a catalog item
type CreateCatalogItemInput struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// UpdateCatalogItemInput defines the expected JSON structure for updating a catalog item
type UpdateCatalogItemInput struct {
	Name      *string `json:"name"`
	ImageURL  *string `json:"imageUrl"`
	Available *bool   `json:"available"`
}

// CreateCatalogItem registers a new garment/item type
func CreateCatalogItem(c *gin.Context) {
	var input CreateCatalogItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.CatalogItem{
		Name:      input.Name,
		ImageURL:  input.ImageURL,
		Available: true,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create catalog item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetCatalogItems retrieves all catalog items
func GetCatalogItems(c *gin.Context) {
	query := config.DB
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var items []models.CatalogItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve catalog items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetCatalogItem retrieves a specific catalog item by ID
func GetCatalogItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid catalog item ID format")
		return
	}

	var item models.CatalogItem
	if err := config.DB.Where("id = ?", itemUUID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Catalog item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateCatalogItem updates an existing catalog item
func UpdateCatalogItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid catalog item ID format")
		return
	}

	var input UpdateCatalogItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.CatalogItem
	if err := config.DB.Where("id = ?", itemUUID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Catalog item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update catalog item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteCatalogItem soft deletes a catalog item
func DeleteCatalogItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid catalog item ID format")
		return
	}

	if err := config.DB.Where("id = ?", itemUUID).Delete(&models.CatalogItem{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete catalog item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog item deleted successfully"})
}
