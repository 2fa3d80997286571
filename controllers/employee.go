// controllers/employee.go
package controllers

import (
	"errors"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/services"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddEmployeeInput defines the expected JSON structure for creating an employee
type AddEmployeeInput struct {
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=8"`
	Name     string    `json:"name" binding:"required"`
	Phone    string    `json:"phone" binding:"required"`
	ShopID   uuid.UUID `json:"shopId" binding:"required"`
	Role     string    `json:"role" binding:"required,oneof=manager cashier"`
}

// UpdateEmployeeInput defines the expected JSON structure for updating an employee
type UpdateEmployeeInput struct {
	Phone  *string    `json:"phone"`
	ShopID *uuid.UUID `json:"shopId"`
	Role   *string    `json:"role" binding:"omitempty,oneof=manager cashier"`
}

// AddEmployee creates a staff account and its employee record, and puts
// the account into the role group matching the employee's role.
func AddEmployee(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var input AddEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	// Target shop must exist
	var shop models.Shop
	if err := config.DB.Where("id = ?", input.ShopID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     models.RoleStaff,
		IsActive: true,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user account")
		return
	}

	employee := models.Employee{
		UserID: user.ID,
		ShopID: input.ShopID,
		Phone:  input.Phone,
		Role:   input.Role,
	}
	if err := tx.Create(&employee).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	if err := services.AssignEmployeeGroup(tx, &user, input.Role); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign role group")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{
		"id":     employee.ID,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"phone":  employee.Phone,
		"shopId": employee.ShopID,
		"role":   employee.Role,
	})
}

// GetEmployees retrieves all employees
func GetEmployees(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var employees []models.Employee
	if err := config.DB.Preload("User").Preload("Shop").Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee updates an existing employee record
func UpdateEmployee(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.Preload("User").Where("id = ?", employeeUUID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		employee.Phone = *input.Phone
	}
	if input.ShopID != nil {
		employee.ShopID = *input.ShopID
	}
	if input.Role != nil && *input.Role != employee.Role {
		employee.Role = *input.Role
		if err := services.AssignEmployeeGroup(config.DB, &employee.User, *input.Role); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign role group")
			return
		}
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee soft deletes an employee and deactivates its account
func DeleteEmployee(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var employee models.Employee
	if err := config.DB.Where("id = ?", employeeUUID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&employee).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	if err := tx.Model(&models.User{}).Where("id = ?", employee.UserID).
		Update("is_active", false).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate user account")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
