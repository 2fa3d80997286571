// services/provisioning.go
package services

import (
	"errors"
	"fmt"
	"log"

	"lavandaria-backend/models"

	"gorm.io/gorm"
)

// Permission codenames granted to each role group.
var roleGroupPermissions = map[string]models.StringArray{
	models.EmployeeRoleManager: {
		"view_employee",
		"add_catalog_item", "change_catalog_item", "delete_catalog_item", "view_catalog_item",
		"add_service", "change_service", "delete_service", "view_service",
		"add_order", "change_order", "delete_order", "view_order",
		"add_customer", "change_customer", "delete_customer", "view_customer",
		"add_order_item", "change_order_item", "delete_order_item", "view_order_item",
	},
	models.EmployeeRoleCashier: {
		"add_catalog_item", "change_catalog_item", "view_catalog_item",
		"add_order", "change_order", "delete_order", "view_order",
		"add_customer", "change_customer", "delete_customer", "view_customer",
		"add_order_item", "change_order_item", "delete_order_item", "view_order_item",
	},
}

// EnsureRoleGroups creates the fixed role groups with their permission
// lists if they do not exist yet. Runs once at startup.
func EnsureRoleGroups(db *gorm.DB) error {
	for name, permissions := range roleGroupPermissions {
		var group models.Group
		err := db.Where("name = ?", name).First(&group).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		group = models.Group{Name: name, Permissions: permissions}
		if err := db.Create(&group).Error; err != nil {
			return err
		}
		log.Printf("Group '%s' created", name)
	}
	return nil
}

// AssignEmployeeGroup puts the employee's user account into the group
// matching its role and grants administrative login capability.
func AssignEmployeeGroup(db *gorm.DB, user *models.User, role string) error {
	var group models.Group
	if err := db.Where("name = ?", role).First(&group).Error; err != nil {
		return fmt.Errorf("role group %q not provisioned: %w", role, err)
	}

	user.GroupID = &group.ID
	user.IsStaff = true
	return db.Model(user).Updates(map[string]interface{}{
		"group_id": group.ID,
		"is_staff": true,
	}).Error
}
