// controllers/receipt.go
package controllers

import (
	"fmt"
	"log"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrintReceipt returns the printable PDF receipt of an order. Any
// rendering failure is logged and surfaced as a generic server error; no
// partial document is ever returned.
func PrintReceipt(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate receipt.")
		return
	}

	pdf, err := services.RenderReceipt(config.DB, orderUUID)
	if err != nil {
		log.Printf("Failed to generate receipt for order %s: %v", orderUUID, err)
		c.String(http.StatusInternalServerError, "Failed to generate receipt.")
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf(`inline; filename="recibo_pedido_%s.pdf"`, orderUUID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
