package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func productRow(id string, stock int, available bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "flavor", "nicotine_strength", "price", "stock",
		"is_available", "image_url", "description", "created_at", "updated_at",
	}).AddRow(id, "Strawberry Punch", "Strawberry Punch", "5%", 29.99, stock, available, "", "", now, now)
}

func orderRequest(qty int) OrderRequest {
	return OrderRequest{
		CustomerName:  "Jordan Example",
		Phone:         "+971500000000",
		Address:       "12 Marina Walk, Dubai",
		PaymentMethod: models.PaymentCashOnDelivery,
		Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Strawberry Punch", Price: 29.99, Quantity: qty},
		},
		Total: 29.99 * float64(qty),
	}
}

func TestCreateOrder_DecrementsStockAndPersists(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow("p1", 100, true))
	// Stock is the fifth updatable column of products: 100 - 3 = 97.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			97, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	order, err := CreateOrder(gormDB, orderRequest(3))
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_InsufficientStockRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow("p1", 1, true))
	mock.ExpectRollback()

	order, err := CreateOrder(gormDB, orderRequest(5))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_UnavailableProductRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow("p1", 100, false))
	mock.ExpectRollback()

	order, err := CreateOrder(gormDB, orderRequest(1))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_UnknownProductRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectRollback()

	order, err := CreateOrder(gormDB, orderRequest(1))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapOrderStatus_AcceptsCanonicalValues(t *testing.T) {
	for _, s := range []string{"Pending", "Confirmed", "Completed", "Cancelled"} {
		status, err := mapOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatus(s), status)
	}
}

func TestMapOrderStatus_RejectsUnknownValues(t *testing.T) {
	for _, s := range []string{"pending", "Shipped", "", "Completed "} {
		_, err := mapOrderStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}
}

// A Completed order may move back to Pending; the shop reopens orders this way.
func TestUpdateOrderStatus_BackwardTransitionAllowed(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1`)).
		WithArgs("Pending", sqlmock.AnyArg(), "o1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "phone", "email", "address",
			"payment_method", "total", "status", "created_at", "updated_at",
		}).AddRow("o1", "Jordan Example", "+971500000000", "", "12 Marina Walk, Dubai",
			models.PaymentCashOnDelivery, 29.99, "Pending", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "product_id", "product_name", "price", "quantity",
		}).AddRow(1, "o1", "p1", "Strawberry Punch", 29.99, 1))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:orderID/status", UpdateOrderStatusHandler(gormDB, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPut, "/orders/o1/status",
		strings.NewReader(`{"status":"Pending"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
