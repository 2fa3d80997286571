// controllers/scope.go
package controllers

import (
	"errors"
	"net/http"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// actorScope describes what the authenticated actor may see: admins see
// every shop, staff actors are pinned to their employee's shop.
type actorScope struct {
	IsAdmin  bool
	Employee *models.Employee
}

var (
	errNoEmployee = errors.New("logged-in user is not linked to any employee record")
	errNoShop     = errors.New("logged-in employee is not assigned to any shop")
)

// resolveScope derives the actor scope from the JWT claims. A staff actor
// without a valid employee/shop linkage is a fatal configuration error for
// the request, never a silent empty scope.
func resolveScope(c *gin.Context) (*actorScope, error) {
	role, _ := c.Get("role")
	if role == models.RoleAdmin {
		return &actorScope{IsAdmin: true}, nil
	}

	userID, exists := c.Get("userId")
	if !exists {
		return nil, errors.New("user ID not found in context")
	}
	userIDStr, ok := userID.(string)
	if !ok {
		return nil, errors.New("invalid user ID format")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}

	var employee models.Employee
	if err := config.DB.Where("user_id = ?", userUUID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNoEmployee
		}
		return nil, err
	}
	if employee.ShopID == uuid.Nil {
		return nil, errNoShop
	}

	return &actorScope{Employee: &employee}, nil
}

// requireScope resolves the actor scope and aborts the request with a
// server error when the actor-to-shop linkage is misconfigured.
func requireScope(c *gin.Context) (*actorScope, bool) {
	scope, err := resolveScope(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return scope, true
}

// requireAdmin aborts unless the actor carries the admin role.
func requireAdmin(c *gin.Context) bool {
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}
