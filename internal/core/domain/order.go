package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether an order in this status is no longer reconciled upstream.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanAdvanceTo reports whether s may be replaced by next. Statuses only move forward:
// pending -> processing -> completed | cancelled.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if s == next || s.IsTerminal() {
		return false
	}
	switch next {
	case OrderStatusProcessing:
		return s == OrderStatusPending
	case OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// APIStatus is the aggregated outcome of pushing an order upstream.
// The zero value means the order has not been pushed (or had no items).
type APIStatus string

const (
	APIStatusUnset   APIStatus = ""
	APIStatusSuccess APIStatus = "success"
	APIStatusFailed  APIStatus = "failed"
)

type Order struct {
	ID          uint64
	UserID      uint64
	Status      OrderStatus
	APIStatus   APIStatus
	ReferenceID *string
	Network     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	User        *User
	Items       []*OrderItem
}

// OrderItem is one purchased bundle of an order.
type OrderItem struct {
	ID                uint64
	ProductID         uint64
	ProductName       string
	Quantity          int
	Price             decimal.Decimal
	BeneficiaryNumber string
	Variant           *ProductVariant
}

type ProductVariant struct {
	ID         uint64
	Attributes map[string]any
}

// Size returns the bundle size attribute of the variant.
func (v *ProductVariant) Size() (string, bool) {
	if v == nil || v.Attributes == nil {
		return "", false
	}
	raw, ok := v.Attributes["size"]
	if !ok || raw == nil {
		return "", false
	}

	var size string
	switch s := raw.(type) {
	case string:
		size = strings.TrimSpace(s)
	case bool:
		if s {
			size = "1"
		}
	case float64:
		if s != 0 {
			size = strconv.FormatFloat(s, 'f', -1, 64)
		}
	case int:
		if s != 0 {
			size = strconv.Itoa(s)
		}
	default:
		size = fmt.Sprint(s)
	}
	// "0" counts as missing, like zero and false
	return size, size != "" && size != "0"
}

// CompletionMessage is the SMS text sent to the owner once the order is completed.
func CompletionMessage(order *Order) string {
	return fmt.Sprintf("Your order #%d for %s data has been completed successfully. Thank you for using Sharpdatagh!",
		order.ID, order.Network)
}
