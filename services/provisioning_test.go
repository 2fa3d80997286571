package services

import (
	"testing"

	"lavandaria-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestEnsureRoleGroupsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, EnsureRoleGroups(db))
	assert.NoError(t, EnsureRoleGroups(db))

	var groups []models.Group
	assert.NoError(t, db.Find(&groups).Error)
	assert.Len(t, groups, 2)

	byName := map[string]models.Group{}
	for _, group := range groups {
		byName[group.Name] = group
	}

	manager := byName[models.EmployeeRoleManager]
	cashier := byName[models.EmployeeRoleCashier]
	assert.Contains(t, manager.Permissions, "view_employee")
	assert.Contains(t, manager.Permissions, "delete_service")
	assert.NotContains(t, cashier.Permissions, "view_employee")
	assert.Contains(t, cashier.Permissions, "add_order")
}

func TestAssignEmployeeGroup(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, EnsureRoleGroups(db))

	user := models.User{
		Email:    "caixa@matola.test",
		Name:     "Caixa",
		Password: "password123",
		Role:     models.RoleStaff,
		IsActive: true,
	}
	assert.NoError(t, db.Create(&user).Error)
	assert.False(t, user.IsStaff)

	assert.NoError(t, AssignEmployeeGroup(db, &user, models.EmployeeRoleCashier))

	var stored models.User
	assert.NoError(t, db.Preload("Group").Where("id = ?", user.ID).First(&stored).Error)
	assert.True(t, stored.IsStaff)
	if assert.NotNil(t, stored.Group) {
		assert.Equal(t, models.EmployeeRoleCashier, stored.Group.Name)
	}
}

func TestAssignEmployeeGroupUnknownRole(t *testing.T) {
	db := openTestDB(t)

	user := models.User{
		Email:    "orfao@matola.test",
		Name:     "Orfao",
		Password: "password123",
		Role:     models.RoleStaff,
	}
	assert.NoError(t, db.Create(&user).Error)

	err := AssignEmployeeGroup(db, &user, "janitor")
	assert.Error(t, err)
}
