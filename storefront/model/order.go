package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                uuid.UUID     `json:"id"`
	OrderNumber       string        `json:"order_number"`
	UserID            uuid.UUID     `json:"user_id"`
	Status            OrderStatus   `json:"status"`
	SubtotalCents     int64         `json:"subtotal_cents"`
	ShippingCents     int64         `json:"shipping_cents"`
	TaxCents          int64         `json:"tax_cents"`
	DiscountCents     int64         `json:"discount_cents"`
	TotalCents        int64         `json:"total_cents"`
	ShippingAddressID uuid.UUID     `json:"shipping_address_id"`
	BillingAddressID  uuid.UUID     `json:"billing_address_id"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	CouponCode        *string       `json:"coupon_code,omitempty"`
	Notes             *string       `json:"notes,omitempty"`
	Items             []OrderItem   `json:"items,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// orderTransitions lists the statuses reachable from each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusRefunded},
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether the customer may still cancel the order.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodUPI      PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderItem struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

// TimelineEntry is one append-only record of an order status change or event.
type TimelineEntry struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	ActorID   *uuid.UUID  `json:"actor_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderNote struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

// Actor is the authenticated caller an order operation runs on behalf of.
type Actor struct {
	ID    uuid.UUID
	Admin bool
}

// CanAccess reports whether the actor may see orders placed by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.Admin || (a.ID != uuid.Nil && a.ID == ownerID)
}

// TimelineInput is one manually recorded timeline event.
type TimelineInput struct {
	OrderID uuid.UUID   `json:"order_id"`
	Status  OrderStatus `json:"status"`
	Note    string      `json:"note,omitempty"`
}
