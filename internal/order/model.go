// Package order implements the order wizard: a per-user finite-state
// session that walks a buyer from variant selection through quantity,
// delivery data and confirmation into a finalized order.
package order

import (
	"time"

	"tamstore-bot/internal/product"
)

// Step is the wizard state a session is currently waiting on.
type Step string

const (
	StepVariantSelection Step = "variant_selection"
	StepQuantityInput    Step = "quantity_input"
	StepCustomerInfo     Step = "customer_info"
	StepConfirmation     Step = "confirmation"
)

// CustomerInfo is the delivery data collected at the customer-info step.
// PostalCode is optional; the rest are required.
type CustomerInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Session is the per-user wizard state. The product is snapshotted at
// session start; stock is not re-read afterwards.
type Session struct {
	UserID          string           `json:"user_id"`
	ProductID       string           `json:"product_id"`
	Product         product.Product  `json:"product"`
	Step            Step             `json:"step"`
	SelectedVariant *product.Variant `json:"selected_variant,omitempty"`
	Quantity        int              `json:"quantity"`
	CustomerInfo    CustomerInfo     `json:"customer_info"`
	StartTime       time.Time        `json:"start_time"`
}

// UnitPrice is the variant price when one is selected, otherwise the
// base product price.
func (s *Session) UnitPrice() int {
	if s.SelectedVariant != nil {
		return s.SelectedVariant.Price
	}
	return s.Product.Price
}

// StockCeiling is the effective per-order stock limit before the global
// quantity cap: the variant's stock, or the cap itself when variantless.
func (s *Session) StockCeiling(maxQty int) int {
	if s.SelectedVariant != nil {
		return s.SelectedVariant.Stock
	}
	return maxQty
}

// Expired reports whether the session passed its time-to-live at now.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.StartTime) > ttl
}

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
)

// Order is the immutable record produced once per finalized session.
type Order struct {
	OrderID      string           `json:"order_id"`
	UserID       string           `json:"user_id"`
	Product      product.Product  `json:"product"`
	Variant      *product.Variant `json:"variant,omitempty"`
	Quantity     int              `json:"quantity"`
	CustomerInfo CustomerInfo     `json:"customer_info"`
	Subtotal     int              `json:"subtotal"`
	ShippingFee  int              `json:"shipping_fee"`
	Total        int              `json:"total"`
	Status       Status           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}
