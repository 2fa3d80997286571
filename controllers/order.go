// controllers/order.go
package controllers

import (
	"errors"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/services"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemInput defines the structure for an order line. Amounts are
// always derived server-side, never accepted from the caller.
type OrderItemInput struct {
	ServiceID     uuid.UUID  `json:"serviceId" binding:"required"`
	CatalogItemID *uuid.UUID `json:"catalogItemId"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	CustomerID uuid.UUID        `json:"customerId" binding:"required"`
	ShopID     *uuid.UUID       `json:"shopId"`
	Status     string           `json:"status" binding:"omitempty,oneof=pending in_progress ready completed cancelled"`
	Items      []OrderItemInput `json:"items"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order
type UpdateOrderInput struct {
	CustomerID *uuid.UUID `json:"customerId"`
	Status     *string    `json:"status" binding:"omitempty,oneof=pending in_progress ready completed cancelled"`
	Paid       *bool      `json:"paid"`
}

// scopedOrderQuery narrows order visibility to the actor's shop for staff
func scopedOrderQuery(db *gorm.DB, scope *actorScope) *gorm.DB {
	if scope.IsAdmin {
		return db
	}
	return db.Where("shop_id = ?", scope.Employee.ShopID)
}

// buildOrderItem validates the referenced service and catalog item against
// the order's shop and returns the priced line.
func buildOrderItem(tx *gorm.DB, shopID uuid.UUID, input OrderItemInput) (*models.OrderItem, int, string) {
	var service models.Service
	if err := tx.Where("shop_id = ? AND id = ?", shopID, input.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusBadRequest, "Service not found: " + input.ServiceID.String()
		}
		return nil, http.StatusInternalServerError, "Database error"
	}

	if input.CatalogItemID != nil {
		var catalogItem models.CatalogItem
		if err := tx.Where("id = ?", *input.CatalogItemID).First(&catalogItem).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, http.StatusBadRequest, "Catalog item not found: " + input.CatalogItemID.String()
			}
			return nil, http.StatusInternalServerError, "Database error"
		}
	}

	item := models.OrderItem{
		ServiceID:     service.ID,
		CatalogItemID: input.CatalogItemID,
		Quantity:      input.Quantity,
	}
	services.RecomputeLineAmount(&item, &service)
	return &item, 0, ""
}

// CreateOrder creates an order. Staff actors have shop and employee set
// from their employee record; caller-supplied values are ignored for them.
func CreateOrder(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var shopID uuid.UUID
	var employeeID *uuid.UUID
	if scope.IsAdmin {
		if input.ShopID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Shop ID is required")
			return
		}
		var shop models.Shop
		if err := config.DB.Where("id = ?", *input.ShopID).First(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Shop not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		shopID = shop.ID
	} else {
		shopID = scope.Employee.ShopID
		employeeID = &scope.Employee.ID
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", input.CustomerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order := models.Order{
		CustomerID: input.CustomerID,
		ShopID:     shopID,
		EmployeeID: employeeID,
		Status:     status,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	for _, itemInput := range input.Items {
		item, code, msg := buildOrderItem(tx, shopID, itemInput)
		if item == nil {
			tx.Rollback()
			utils.RespondWithError(c, code, msg)
			return
		}
		item.OrderID = order.ID
		if err := tx.Create(item).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order item")
			return
		}
	}

	if _, err := services.RecomputeOrderTotal(tx, order.ID); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to recalculate order total")
		return
	}

	tx.Commit()

	var created models.Order
	if err := config.DB.Preload("Items").Preload("Customer").
		Where("id = ?", order.ID).First(&created).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load created order")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetOrders retrieves orders visible to the actor
func GetOrders(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	query := scopedOrderQuery(config.DB, scope)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paid := c.Query("paid"); paid != "" {
		query = query.Where("paid = ?", paid == "true")
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("Customer").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func GetOrder(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := scopedOrderQuery(config.DB, scope).
		Preload("Items.Service").Preload("Items.CatalogItem").
		Preload("Customer").Preload("Shop").
		Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrder updates order status, paid flag or customer. The total is
// derived and cannot be set here.
func UpdateOrder(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := scopedOrderQuery(config.DB, scope).
		Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := config.DB.Where("id = ?", *input.CustomerID).First(&customer).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			return
		}
		order.CustomerID = *input.CustomerID
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.Paid != nil {
		order.Paid = *input.Paid
	}

	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder deletes an order and its items
func DeleteOrder(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := scopedOrderQuery(config.DB, scope).
		Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order items")
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// findScopedOrder loads an order within the actor's scope for item mutations
func findScopedOrder(c *gin.Context, scope *actorScope) (*models.Order, bool) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return nil, false
	}

	var order models.Order
	if err := scopedOrderQuery(config.DB, scope).
		Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &order, true
}

// AddOrderItem appends a priced line to an order and recalculates the total
func AddOrderItem(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	order, ok := findScopedOrder(c, scope)
	if !ok {
		return
	}

	var input OrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	item, code, msg := buildOrderItem(tx, order.ShopID, input)
	if item == nil {
		tx.Rollback()
		utils.RespondWithError(c, code, msg)
		return
	}
	item.OrderID = order.ID

	if err := tx.Create(item).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order item")
		return
	}

	total, err := services.RecomputeOrderTotal(tx, order.ID)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to recalculate order total")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{"item": item, "orderTotal": total})
}

// UpdateOrderItem changes a line's service, catalog item or quantity; the
// amount and the order total are recomputed
func UpdateOrderItem(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	order, ok := findScopedOrder(c, scope)
	if !ok {
		return
	}

	itemUUID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var input struct {
		ServiceID     *uuid.UUID `json:"serviceId"`
		CatalogItemID *uuid.UUID `json:"catalogItemId"`
		Quantity      *int       `json:"quantity" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.OrderItem
	if err := config.DB.Where("order_id = ? AND id = ?", order.ID, itemUUID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ServiceID != nil {
		item.ServiceID = *input.ServiceID
	}
	if input.CatalogItemID != nil {
		item.CatalogItemID = input.CatalogItemID
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var service models.Service
	if err := tx.Where("shop_id = ? AND id = ?", order.ShopID, item.ServiceID).
		First(&service).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+item.ServiceID.String())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if item.CatalogItemID != nil {
		var catalogItem models.CatalogItem
		if err := tx.Where("id = ?", *item.CatalogItemID).First(&catalogItem).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Catalog item not found: "+item.CatalogItemID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	services.RecomputeLineAmount(&item, &service)

	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order item")
		return
	}

	total, err := services.RecomputeOrderTotal(tx, order.ID)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to recalculate order total")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"item": item, "orderTotal": total})
}

// DeleteOrderItem removes a line and recalculates the parent order's total
func DeleteOrderItem(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	order, ok := findScopedOrder(c, scope)
	if !ok {
		return
	}

	itemUUID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var item models.OrderItem
	if err := config.DB.Where("order_id = ? AND id = ?", order.ID, itemUUID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order item")
		return
	}

	total, err := services.RecomputeOrderTotal(tx, order.ID)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to recalculate order total")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted successfully", "orderTotal": total})
}
