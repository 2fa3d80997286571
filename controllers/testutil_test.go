package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/routes"
	"lavandaria-backend/services"
	"lavandaria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a named in-memory database and points the global
// connection at it
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Shop{},
		&models.Employee{},
		&models.CatalogItem{},
		&models.Service{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DB = db
	return db
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupTestDB(t)
	return routes.SetupRouter()
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(uuid.New().String(), models.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func staffToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateToken(userID.String(), models.RoleStaff)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func seedShop(t *testing.T, db *gorm.DB, name, phone string) models.Shop {
	t.Helper()
	shop := models.Shop{Name: name, Address: "Av. de Moçambique", Phone: phone}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("failed to seed shop: %v", err)
	}
	return shop
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: phone}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedService(t *testing.T, db *gorm.DB, shopID uuid.UUID, name, price string) models.Service {
	t.Helper()
	service := models.Service{
		ShopID:    shopID,
		Name:      name,
		BasePrice: decimal.RequireFromString(price),
		IsActive:  true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return service
}

func seedStaff(t *testing.T, db *gorm.DB, shopID uuid.UUID, email, phone string) (models.User, models.Employee) {
	t.Helper()
	if err := services.EnsureRoleGroups(db); err != nil {
		t.Fatalf("failed to provision role groups: %v", err)
	}

	user := models.User{
		Email:    email,
		Name:     "Staff " + email,
		Password: "password123",
		Role:     models.RoleStaff,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	employee := models.Employee{
		UserID: user.ID,
		ShopID: shopID,
		Phone:  phone,
		Role:   models.EmployeeRoleCashier,
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}

	if err := services.AssignEmployeeGroup(db, &user, employee.Role); err != nil {
		t.Fatalf("failed to assign role group: %v", err)
	}
	return user, employee
}
