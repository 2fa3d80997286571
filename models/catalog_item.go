package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is a garment/item type selectable on an order line.
type CatalogItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	ImageURL  string
	Available bool `gorm:"default:true"`

	Items []OrderItem `gorm:"foreignKey:CatalogItemID"`

	gorm.Model
}

func (i *CatalogItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
