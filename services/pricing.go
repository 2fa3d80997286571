// services/pricing.go
package services

import (
	"lavandaria-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecomputeLineAmount sets the derived amount of an order item from the
// service base price and the quantity. Must run before the item is
// persisted; nothing else writes OrderItem.Amount.
func RecomputeLineAmount(item *models.OrderItem, service *models.Service) {
	if service != nil && item.Quantity > 0 {
		item.Amount = service.BasePrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		return
	}
	item.Amount = decimal.Zero
}

// RecomputeOrderTotal sums the amounts of the items currently on the order
// and persists the new total. Must run immediately after every item
// insert, update or delete; nothing else writes Order.Total.
func RecomputeOrderTotal(db *gorm.DB, orderID uuid.UUID) (decimal.Decimal, error) {
	var items []models.OrderItem
	if err := db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	if err := db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total", total).Error; err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
