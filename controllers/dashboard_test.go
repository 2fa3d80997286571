package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lavandaria-backend/config"
	"lavandaria-backend/controllers"
	"lavandaria-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDashboardOverview(t *testing.T) {
	router := setupRouter(t)
	db := config.DB
	token := adminToken(t)

	shopA := seedShop(t, db, "Matola", "+258821000030")
	shopB := seedShop(t, db, "Maputo", "+258821000031")
	customer := seedCustomer(t, db, "Ana Macamo", "841234590")

	paid := models.Order{
		CustomerID: customer.ID,
		ShopID:     shopA.ID,
		Paid:       true,
		Total:      decimal.RequireFromString("750.00"),
	}
	unpaid := models.Order{
		CustomerID: customer.ID,
		ShopID:     shopB.ID,
		Total:      decimal.RequireFromString("120.00"),
	}
	assert.NoError(t, db.Create(&paid).Error)
	assert.NoError(t, db.Create(&unpaid).Error)

	w := doJSON(router, "GET", "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		KPIs struct {
			TotalOrders    int    `json:"totalOrders"`
			UnpaidOrders   int    `json:"unpaidOrders"`
			TotalCustomers int    `json:"totalCustomers"`
			TotalSales     string `json:"totalSales"`
		} `json:"kpis"`
		OrdersChart struct {
			Labels []string `json:"labels"`
			Data   []int    `json:"data"`
		} `json:"ordersChart"`
		SalesChart struct {
			Labels []string  `json:"labels"`
			Data   []float64 `json:"data"`
		} `json:"salesChart"`
		Shops []controllers.ShopSummaryRow `json:"shops"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.KPIs.TotalOrders)
	assert.Equal(t, 1, resp.KPIs.UnpaidOrders)
	assert.Equal(t, 1, resp.KPIs.TotalCustomers)
	assert.Equal(t, "750.00 MZN", resp.KPIs.TotalSales)

	// Trailing 7-day series; today's bucket carries the paid order
	assert.Len(t, resp.OrdersChart.Labels, 7)
	assert.Len(t, resp.OrdersChart.Data, 7)
	assert.Len(t, resp.SalesChart.Data, 7)
	assert.Equal(t, 1, resp.OrdersChart.Data[6])
	assert.InDelta(t, 750.0, resp.SalesChart.Data[6], 0.001)

	assert.Len(t, resp.Shops, 2)
	totals := map[string]controllers.ShopSummaryRow{}
	for _, row := range resp.Shops {
		totals[row.Name] = row
	}
	assert.Equal(t, 1, totals["Matola"].TotalOrders)
	assert.Equal(t, "750.00 MZN", totals["Matola"].TotalSales)
	assert.Equal(t, 1, totals["Maputo"].TotalOrders)
	assert.Equal(t, "0.00 MZN", totals["Maputo"].TotalSales)
}
