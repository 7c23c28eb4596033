package orders

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Order struct {
	ID                uuid.UUID          `json:"id"`
	OrderNumber       string             `json:"order_number"`
	UserID            uuid.UUID          `json:"user_id"`
	Status            string             `json:"status"`
	SubtotalCents     int64              `json:"subtotal_cents"`
	ShippingCents     int64              `json:"shipping_cents"`
	TaxCents          int64              `json:"tax_cents"`
	DiscountCents     int64              `json:"discount_cents"`
	TotalCents        int64              `json:"total_cents"`
	ShippingAddressID uuid.UUID          `json:"shipping_address_id"`
	BillingAddressID  uuid.UUID          `json:"billing_address_id"`
	PaymentMethod     string             `json:"payment_method"`
	PaymentStatus     string             `json:"payment_status"`
	CouponCode        pgtype.Text        `json:"coupon_code"`
	Notes             pgtype.Text        `json:"notes"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type OrderItem struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

type OrderTimeline struct {
	ID        uuid.UUID          `json:"id"`
	OrderID   uuid.UUID          `json:"order_id"`
	Status    string             `json:"status"`
	Note      pgtype.Text        `json:"note"`
	ActorID   uuid.NullUUID      `json:"actor_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type OrderNote struct {
	ID         uuid.UUID          `json:"id"`
	OrderID    uuid.UUID          `json:"order_id"`
	AuthorID   uuid.UUID          `json:"author_id"`
	Body       string             `json:"body"`
	IsInternal bool               `json:"is_internal"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
