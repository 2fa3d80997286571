// controllers/notify.go
package controllers

import (
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/services"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotifyReadyInput selects the orders of the bulk action
type NotifyReadyInput struct {
	OrderIDs []uuid.UUID `json:"orderIds" binding:"required,min=1"`
}

// NotifyReadyOrders sends the order-ready SMS for every selected order in
// status 'ready' and reports a per-order result. There is no retry and no
// idempotence guarantee; re-running the action re-sends messages.
func NotifyReadyOrders(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	var input NotifyReadyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var orders []models.Order
	if err := scopedOrderQuery(config.DB, scope).Preload("Customer").
		Where("id IN ?", input.OrderIDs).Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	notifier := services.NewNotifier(config.DB)
	results := notifier.NotifyReadyOrders(orders)

	c.JSON(http.StatusOK, gin.H{"results": results})
}
