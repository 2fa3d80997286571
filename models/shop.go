package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string
	Phone   string `gorm:"uniqueIndex;not null"`
	Email   string

	Employees []Employee `gorm:"foreignKey:ShopID"`
	Services  []Service  `gorm:"foreignKey:ShopID"`
	Orders    []Order    `gorm:"foreignKey:ShopID"`

	gorm.Model
}

func (s *Shop) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
