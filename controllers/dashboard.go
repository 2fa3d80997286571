// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShopSummaryRow struct {
	Name        string `json:"name"`
	TotalOrders int    `json:"totalOrders"`
	TotalSales  string `json:"totalSales"`
}

// GetDashboardOverview returns the aggregate counts, the 7-day trailing
// daily series of paid orders and sales, and the per-shop summary table
// consumed by the dashboard renderer.
func GetDashboardOverview(c *gin.Context) {
	var totalOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)

	var unpaidOrders int64
	config.DB.Model(&models.Order{}).Where("paid = ?", false).Count(&unpaidOrders)

	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Count(&totalCustomers)

	days := utils.LastNDays(7, time.Now())

	var paidOrders []models.Order
	if err := config.DB.Where("paid = ?", true).Find(&paidOrders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	totalSales := decimal.Zero
	for _, order := range paidOrders {
		totalSales = totalSales.Add(order.Total)
	}

	// Bucket paid orders per trailing day
	labels := make([]string, len(days))
	orderCounts := make([]int, len(days))
	salesTotals := make([]float64, len(days))
	dayIndex := make(map[string]int, len(days))
	for i, day := range days {
		labels[i] = day.Format("2006-01-02")
		dayIndex[labels[i]] = i
	}
	for _, order := range paidOrders {
		key := utils.BeginningOfDay(order.CreatedAt).Format("2006-01-02")
		if i, ok := dayIndex[key]; ok {
			orderCounts[i]++
			salesTotals[i], _ = decimal.NewFromFloat(salesTotals[i]).Add(order.Total).Float64()
		}
	}

	// Per-shop summary: order counts plus paid sales totals
	var shops []models.Shop
	if err := config.DB.Find(&shops).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shops")
		return
	}

	var allOrders []models.Order
	if err := config.DB.Find(&allOrders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	countsByShop := make(map[uuid.UUID]int)
	salesByShop := make(map[uuid.UUID]decimal.Decimal)
	for _, order := range allOrders {
		countsByShop[order.ShopID]++
		if order.Paid {
			salesByShop[order.ShopID] = salesByShop[order.ShopID].Add(order.Total)
		}
	}

	rows := make([]ShopSummaryRow, 0, len(shops))
	for _, shop := range shops {
		rows = append(rows, ShopSummaryRow{
			Name:        shop.Name,
			TotalOrders: countsByShop[shop.ID],
			TotalSales:  salesByShop[shop.ID].StringFixed(2) + " MZN",
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"kpis": gin.H{
			"totalOrders":    totalOrders,
			"unpaidOrders":   unpaidOrders,
			"totalCustomers": totalCustomers,
			"totalSales":     totalSales.StringFixed(2) + " MZN",
		},
		"ordersChart": gin.H{"labels": labels, "data": orderCounts},
		"salesChart":  gin.H{"labels": labels, "data": salesTotals},
		"shops":       rows,
	})
}
