package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfillment state of an order. The enum is flat:
// any status may follow any other, there is no enforced transition graph.
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderStatuses lists every valid order status.
var orderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDispatched,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(orderStatuses, s)
}

// PaymentMethodCOD is the only supported payment method in this version.
const PaymentMethodCOD = "cod"

// PaymentStatusPending is the initial payment status for cash-on-delivery.
const PaymentStatusPending = "pending"

// CartItem is a priced order line: a product reference, a quantity, the
// chosen customization option per category, and the computed line total
// (unit price times quantity).
type CartItem struct {
	ProductID       uuid.UUID
	Quantity        int
	Customizations  map[string]string
	CalculatedPrice float64
}

// Order is a persisted snapshot of a placed cart: its priced items, the
// summed total, and the delivery address as it was at placement time.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Items           []CartItem
	TotalAmount     float64
	DeliveryAddress Address
	PaymentMethod   string
	PaymentStatus   string
	OrderStatus     OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
