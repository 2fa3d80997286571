package controllers_test

import (
	"net/http"
	"testing"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrackOrderRedirectsToDetails(t *testing.T) {
	router := setupRouter(t)

	orderID := uuid.New()
	w := doJSON(router, "POST", "/track", "", map[string]interface{}{"orderId": orderID.String()})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/track/"+orderID.String(), w.Header().Get("Location"))
}

func TestTrackOrderWithoutIDFails(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/track", "", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderDetailsReturnsOrderAndItems(t *testing.T) {
	router := setupRouter(t)
	db := config.DB

	shop := seedShop(t, db, "Power Washing", "+258821000020")
	customer := seedCustomer(t, db, "Ana Macamo", "841234580")
	service := seedService(t, db, shop.ID, "Lavagem", "150.00")

	order := models.Order{CustomerID: customer.ID, ShopID: shop.ID}
	assert.NoError(t, db.Create(&order).Error)
	item := models.OrderItem{OrderID: order.ID, ServiceID: service.ID, Quantity: 2}
	services.RecomputeLineAmount(&item, &service)
	assert.NoError(t, db.Create(&item).Error)

	w := doJSON(router, "GET", "/track/"+order.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.ID.String())
	assert.Contains(t, w.Body.String(), "Ana Macamo")
	assert.Contains(t, w.Body.String(), "300")
}

func TestOrderDetailsNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/track/"+uuid.New().String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceiptEndpointReturnsInlinePDF(t *testing.T) {
	router := setupRouter(t)
	db := config.DB

	shop := seedShop(t, db, "Power Washing", "+258821000021")
	customer := seedCustomer(t, db, "Carlos Sitoe", "841234581")
	service := seedService(t, db, shop.ID, "Lavagem", "150.00")

	order := models.Order{CustomerID: customer.ID, ShopID: shop.ID}
	assert.NoError(t, db.Create(&order).Error)
	item := models.OrderItem{OrderID: order.ID, ServiceID: service.ID, Quantity: 2}
	services.RecomputeLineAmount(&item, &service)
	assert.NoError(t, db.Create(&item).Error)
	_, err := services.RecomputeOrderTotal(db, order.ID)
	assert.NoError(t, err)

	w := doJSON(router, "GET", "/orders/"+order.ID.String()+"/receipt", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "recibo_pedido_"+order.ID.String()+".pdf")
	assert.True(t, len(w.Body.Bytes()) > 4 && string(w.Body.Bytes()[:4]) == "%PDF")
}

func TestReceiptEndpointFailsGenericallyForMissingOrder(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/orders/"+uuid.New().String()+"/receipt", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate receipt.", w.Body.String())
}
