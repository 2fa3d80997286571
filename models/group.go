package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is a provisioned role group (manager, cashier) carrying the
// permission codenames granted to its members.
type Group struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	Name        string      `gorm:"uniqueIndex;not null"`
	Permissions StringArray `gorm:"type:text"`

	Users []User `gorm:"foreignKey:GroupID"`

	gorm.Model
}

func (g *Group) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

// Custom JSON-backed string list type
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
