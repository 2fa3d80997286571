package services

import (
	"fmt"
	"strings"
	"testing"

	"lavandaria-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Shop{},
		&models.Employee{},
		&models.CatalogItem{},
		&models.Service{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestRecomputeLineAmount(t *testing.T) {
	service := models.Service{BasePrice: decimal.RequireFromString("150.00")}

	item := models.OrderItem{Quantity: 2}
	RecomputeLineAmount(&item, &service)
	assert.Equal(t, "300.00", item.Amount.StringFixed(2))

	item.Quantity = 3
	RecomputeLineAmount(&item, &service)
	assert.Equal(t, "450.00", item.Amount.StringFixed(2))
}

func TestRecomputeLineAmountZeroWhenServiceOrQuantityMissing(t *testing.T) {
	item := models.OrderItem{Quantity: 2}
	RecomputeLineAmount(&item, nil)
	assert.True(t, item.Amount.IsZero())

	service := models.Service{BasePrice: decimal.RequireFromString("150.00")}
	item = models.OrderItem{Quantity: 0, Amount: decimal.RequireFromString("99.00")}
	RecomputeLineAmount(&item, &service)
	assert.True(t, item.Amount.IsZero())
}

func TestRecomputeOrderTotalSumsCurrentLines(t *testing.T) {
	db := openTestDB(t)

	shop := models.Shop{Name: "Matola", Phone: "+258821000100"}
	assert.NoError(t, db.Create(&shop).Error)
	customer := models.Customer{Name: "Ana", Phone: "841234600"}
	assert.NoError(t, db.Create(&customer).Error)
	service := models.Service{ShopID: shop.ID, Name: "Lavagem", BasePrice: decimal.RequireFromString("150.00")}
	assert.NoError(t, db.Create(&service).Error)
	order := models.Order{CustomerID: customer.ID, ShopID: shop.ID}
	assert.NoError(t, db.Create(&order).Error)

	for _, quantity := range []int{2, 3} {
		item := models.OrderItem{OrderID: order.ID, ServiceID: service.ID, Quantity: quantity}
		RecomputeLineAmount(&item, &service)
		assert.NoError(t, db.Create(&item).Error)
	}

	total, err := RecomputeOrderTotal(db, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "750.00", total.StringFixed(2))

	var stored models.Order
	assert.NoError(t, db.Where("id = ?", order.ID).First(&stored).Error)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("750.00")))
}

func TestRecomputeOrderTotalWithoutLinesIsZero(t *testing.T) {
	db := openTestDB(t)

	shop := models.Shop{Name: "Matola", Phone: "+258821000101"}
	assert.NoError(t, db.Create(&shop).Error)
	customer := models.Customer{Name: "Ana", Phone: "841234601"}
	assert.NoError(t, db.Create(&customer).Error)
	order := models.Order{
		CustomerID: customer.ID,
		ShopID:     shop.ID,
		Total:      decimal.RequireFromString("750.00"),
	}
	assert.NoError(t, db.Create(&order).Error)

	total, err := RecomputeOrderTotal(db, order.ID)
	assert.NoError(t, err)
	assert.True(t, total.IsZero())

	var stored models.Order
	assert.NoError(t, db.Where("id = ?", order.ID).First(&stored).Error)
	assert.True(t, stored.Total.IsZero())
}
