package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmployeeRoleManager = "manager"
	EmployeeRoleCashier = "cashier"
)

type Employee struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ShopID uuid.UUID `gorm:"type:uuid;index;not null"`
	Phone  string    `gorm:"uniqueIndex;not null"`
	Role   string    `gorm:"type:varchar(20);not null"` // 'manager' or 'cashier'

	User User `gorm:"foreignKey:UserID"`
	Shop Shop `gorm:"foreignKey:ShopID"`

	gorm.Model
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
