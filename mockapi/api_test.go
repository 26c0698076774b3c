package mockapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/venkatakrishna06/restaurant-pos/mockapi"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

var dbSeq atomic.Int64

func setupServer(t *testing.T) (*mockapi.Server, *gorm.DB) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:mockapi%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	server, err := mockapi.NewServer(db)
	if err != nil {
		panic(err)
	}
	return server, db
}

func seedUser(db *gorm.DB, email, password string) models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := models.User{Name: "Tester", Email: email, Password: string(hashed), Role: "admin"}
	db.Create(&user)
	return user
}

func doJSON(server *mockapi.Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.Engine.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestLogin(t *testing.T) {
	server, db := setupServer(t)
	seedUser(db, "admin@pos.local", "secret123")

	w := doJSON(server, "POST", "/login", "", map[string]string{
		"email":    "admin@pos.local",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	response := envelope(t, w)
	assert.Equal(t, "Login successful", response["message"])
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	w = doJSON(server, "POST", "/login", "", map[string]string{
		"email":    "admin@pos.local",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFirstAdminOnlyOnce(t *testing.T) {
	server, _ := setupServer(t)

	payload := map[string]string{
		"email":           "owner@pos.local",
		"password":        "secret123",
		"restaurant_name": "Warung Test",
	}

	w := doJSON(server, "POST", "/first-admin", "", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(server, "POST", "/first-admin", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server, _ := setupServer(t)

	w := doJSON(server, "GET", "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(server, "GET", "/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken(1, "admin")
	assert.NoError(t, err)
	w = doJSON(server, "GET", "/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTableUpdateClearRefs(t *testing.T) {
	server, db := setupServer(t)
	token, _ := utils.GenerateToken(1, "admin")

	orderID := uint(9)
	table := models.Table{
		TableNumber:    1,
		Capacity:       4,
		Status:         models.TableOccupied,
		CurrentOrderID: &orderID,
		MergedWith:     []uint{2, 3},
	}
	db.Create(&table)

	url := fmt.Sprintf("/restaurant-tables/%d", table.ID)
	w := doJSON(server, "PUT", url, token, map[string]interface{}{
		"status":     models.TableCleaning,
		"clear_refs": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Table
	db.First(&updated, table.ID)
	assert.Equal(t, models.TableCleaning, updated.Status)
	assert.Nil(t, updated.CurrentOrderID)
	assert.Empty(t, updated.MergedWith)
}

func TestOrderCreateComputesTotal(t *testing.T) {
	server, _ := setupServer(t)
	token, _ := utils.GenerateToken(1, "admin")

	w := doJSON(server, "POST", "/orders", token, map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 2, "price": 150},
			{"menu_item_id": 2, "quantity": 1, "price": 80},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	response := envelope(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 380.0, data["total_amount"])
	assert.Equal(t, models.OrderPlaced, data["status"])
}

func TestOrderUpdateReplacesItems(t *testing.T) {
	server, db := setupServer(t)
	token, _ := utils.GenerateToken(1, "admin")

	order := models.Order{
		TableID: 1, CustomerID: 1, Status: models.OrderPlaced,
		Items: []models.OrderItem{
			{MenuItemID: 1, Quantity: 2, Price: 100, Status: models.ItemPlaced},
		},
	}
	db.Create(&order)

	url := fmt.Sprintf("/orders/%d", order.ID)
	w := doJSON(server, "PUT", url, token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 2, "quantity": 3, "price": 50},
		},
		"total_amount": 150,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.OrderItem
	db.Where("order_id = ?", order.ID).Find(&items)
	assert.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].MenuItemID)

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Equal(t, 150.0, updated.TotalAmount)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	server, db := setupServer(t)
	user := seedUser(db, "admin@pos.local", "secret123")
	token, _ := utils.GenerateToken(user.ID, user.Role)

	w := doJSON(server, "PUT", "/auth/password", token, map[string]string{
		"current_password": "wrong",
		"new_password":     "newsecret",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(server, "PUT", "/auth/password", token, map[string]string{
		"current_password": "secret123",
		"new_password":     "newsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
