package orderControllers

import (
	"errors"
	"fmt"
	"strings"

	cartControllers "github.com/mookistore/vapeshop-api/controllers/cart"
	"github.com/mookistore/vapeshop-api/models"
)

// ErrValidation marks checkout input problems. These block submission and
// leave the cart untouched.
var ErrValidation = errors.New("validation failed")

// CustomerInput is the contact and delivery data supplied at checkout.
type CustomerInput struct {
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// OrderRequest is an assembled, validated checkout submission. Items are a
// by-value snapshot of the cart: later cart mutations cannot touch them.
type OrderRequest struct {
	CustomerName  string
	Phone         string
	Email         string
	Address       string
	PaymentMethod string
	Items         []models.OrderItem
	Total         float64
}

// BuildOrderRequest validates customer input against a cart snapshot and
// produces an OrderRequest. An empty cart must never reach order creation, so
// it is rejected here. The total is recomputed from the snapshot; any
// client-supplied figure is informational only.
func BuildOrderRequest(items []models.CartLineItem, input CustomerInput) (OrderRequest, error) {
	if len(items) == 0 {
		return OrderRequest{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return OrderRequest{}, fmt.Errorf("%w: customer_name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return OrderRequest{}, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return OrderRequest{}, fmt.Errorf("%w: address is required", ErrValidation)
	}

	method := input.PaymentMethod
	if method == "" {
		method = models.PaymentCashOnDelivery
	}
	if method != models.PaymentCashOnDelivery && method != models.PaymentPayInStore {
		return OrderRequest{}, fmt.Errorf("%w: invalid payment_method %q", ErrValidation, input.PaymentMethod)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return OrderRequest{}, fmt.Errorf("%w: item product_id is required", ErrValidation)
		}
		if it.Quantity < 1 {
			return OrderRequest{}, fmt.Errorf("%w: quantity for %q must be at least 1", ErrValidation, it.ProductName)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}

	return OrderRequest{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Address:       strings.TrimSpace(input.Address),
		PaymentMethod: method,
		Items:         orderItems,
		Total:         cartControllers.LineItemsTotal(items),
	}, nil
}
