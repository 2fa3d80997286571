// services/receipt.go
package services

import (
	"bytes"
	"fmt"

	"lavandaria-backend/models"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// Thermal receipt form factor, in points
const (
	receiptWidth  = 220.0
	receiptHeight = 600.0
	receiptMargin = 10.0
	lineAdvance   = 30.0
)

// Fixed header printed on every receipt
var receiptHeader = []string{
	"POWER WASHING LTDA",
	"401426310",
	"AV. Samora Machel",
	"Matola",
}

type ReceiptLine struct {
	Text     string
	Centered bool
}

func itemLabel(item models.OrderItem) string {
	if item.CatalogItem != nil {
		return item.CatalogItem.Name
	}
	return item.Service.Name
}

// BuildReceiptLines lays out the printable receipt as a fixed vertical
// stack of lines, top to bottom. Monetary values are rendered with exactly
// two decimal places.
func BuildReceiptLines(order *models.Order) []ReceiptLine {
	lines := make([]ReceiptLine, 0, len(receiptHeader)+len(order.Items)+7)

	for _, h := range receiptHeader {
		lines = append(lines, ReceiptLine{Text: h, Centered: true})
	}

	lines = append(lines,
		ReceiptLine{Text: fmt.Sprintf("Pedido: %s", order.ID)},
		ReceiptLine{Text: fmt.Sprintf("Cliente: %s", order.Customer.Name)},
		ReceiptLine{Text: fmt.Sprintf("Lavandaria: %s", order.Shop.Name)},
		ReceiptLine{Text: fmt.Sprintf("Data: %s", order.CreatedAt.Format("02/01/2006 15:04"))},
		ReceiptLine{Text: "Itens do Pedido:"},
	)

	for _, item := range order.Items {
		lines = append(lines, ReceiptLine{
			Text: fmt.Sprintf("%dx %s - %s MZN", item.Quantity, itemLabel(item), item.Amount.StringFixed(2)),
		})
	}

	paid := "Não"
	if order.Paid {
		paid = "Sim"
	}
	lines = append(lines,
		ReceiptLine{Text: fmt.Sprintf("Total: %s MZN", order.Total.StringFixed(2))},
		ReceiptLine{Text: fmt.Sprintf("Pago: %s", paid)},
	)

	return lines
}

// RenderReceipt loads an order and renders its receipt onto a single
// fixed-size PDF page. Returns an error if the order does not exist or the
// document cannot be produced; no partial document is returned.
func RenderReceipt(db *gorm.DB, orderID uuid.UUID) ([]byte, error) {
	var order models.Order
	if err := db.Preload("Items.Service").Preload("Items.CatalogItem").
		Preload("Customer").Preload("Shop").
		Where("id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: receiptWidth, Ht: receiptHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := 20.0
	for _, line := range BuildReceiptLines(&order) {
		text := tr(line.Text)
		x := receiptMargin
		if line.Centered {
			x = (receiptWidth - pdf.GetStringWidth(text)) / 2
		}
		pdf.Text(x, y, text)
		y += lineAdvance
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
