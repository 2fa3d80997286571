package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ShopID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`

	Status string `gorm:"type:varchar(20);default:'pending'"`

	// Derived: kept equal to the sum of the item amounts by the pricing
	// service. Never accepted from request input.
	Total decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	Paid  bool            `gorm:"default:false"`

	Customer Customer  `gorm:"foreignKey:CustomerID"`
	Shop     Shop      `gorm:"foreignKey:ShopID"`
	Employee *Employee `gorm:"foreignKey:EmployeeID"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

type OrderItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	CatalogItemID *uuid.UUID `gorm:"type:uuid;index"`

	Quantity int `gorm:"not null"`

	// Derived: service base price x quantity, written only by the pricing
	// service.
	Amount decimal.Decimal `gorm:"type:decimal(10,2)"`

	Service     Service      `gorm:"foreignKey:ServiceID"`
	CatalogItem *CatalogItem `gorm:"foreignKey:CatalogItemID"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
