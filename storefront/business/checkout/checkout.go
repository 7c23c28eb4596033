package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/addresses"
	"encore.app/storefront/repository/audit"
	"encore.app/storefront/repository/carts"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/products"
	"encore.app/storefront/saga"
)

// placement carries ids produced by one checkout saga from step to step.
type placement struct {
	userID            uuid.UUID
	req               model.CheckoutRequest
	lines             []model.CartLine
	totals            model.Totals
	shippingAddressID uuid.UUID
	billingAddressID  uuid.UUID
	order             orders.Order
	items             []model.OrderItem
}

// Checkout validates the cart against live stock, prices it, and persists the order.
// Every persisting step is paired with a compensation that runs if a later step fails.
func (b *business) Checkout(ctx context.Context, userID uuid.UUID, req model.CheckoutRequest) (*model.Order, error) {
	lines, err := b.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Gate before anything is written
	if err := CheckStock(lines); err != nil {
		return nil, err
	}

	subtotal := Subtotal(lines)
	p := &placement{userID: userID, req: req, lines: lines}

	s := saga.New("checkout")
	var discount int64
	coupon := b.redeemCoupon(ctx, req.CouponCode, subtotal)
	if coupon != nil {
		discount = Discount(*coupon, subtotal)
		// Usage was counted while pricing; give it back if the order is not placed
		s.Step("redeem-coupon", noop, func(ctx context.Context) error {
			return b.couponRepo.DecrementCouponUsage(ctx, coupon.ID)
		})
	}
	p.totals = ComputeTotals(subtotal, discount)
	p.totals.Coupon = coupon

	s.Step("shipping-address", b.saveShippingAddress(p), func(ctx context.Context) error {
		return b.addressRepo.DeleteAddress(ctx, p.shippingAddressID)
	})
	if !p.req.SameAsShipping && p.req.BillingAddress != nil {
		s.Step("billing-address", b.saveBillingAddress(p), func(ctx context.Context) error {
			return b.addressRepo.DeleteAddress(ctx, p.billingAddressID)
		})
	}

	// Timeline rows go with the order through ON DELETE CASCADE
	s.Step("insert-order", b.insertOrder(p), func(ctx context.Context) error {
		return b.orderRepo.DeleteOrder(ctx, p.order.ID)
	}).
		Step("record-timeline", b.recordPlaced(p), nil).
		Step("insert-items", b.insertItems(p), func(ctx context.Context) error {
			return b.orderRepo.DeleteOrderItems(ctx, p.order.ID)
		}).
		Step("attach-note", b.attachNote(p), nil)

	for _, line := range lines {
		s.Step("decrement-stock:"+line.Product.Name, b.decrementStock(line), func(ctx context.Context) error {
			_, err := b.productRepo.IncrementStock(ctx, products.IncrementStockParams{
				ID:       line.Product.ID,
				Quantity: line.Quantity,
			})
			return err
		})
	}

	s.Step("clear-cart", func(ctx context.Context) error {
		if err := b.cartRepo.ClearCart(ctx, userID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to clear cart"}
		}
		return nil
	}, b.restoreCart(p))

	if err := s.Run(ctx); err != nil {
		return nil, err
	}

	b.recordOrderCreated(ctx, p)

	order := domain.ConvertDBOrderToModel(p.order)
	order.Items = p.items
	return order, nil
}

func noop(context.Context) error { return nil }

// redeemCoupon finds an applicable coupon and counts one use of it. A coupon
// that cannot be counted is dropped rather than failing the checkout.
func (b *business) redeemCoupon(ctx context.Context, code string, subtotal int64) *model.Coupon {
	coupon := b.findCoupon(ctx, code, subtotal)
	if coupon == nil {
		return nil
	}

	rows, err := b.couponRepo.IncrementCouponUsage(ctx, coupon.ID)
	if err != nil {
		rlog.Warn("failed to redeem coupon, continuing without discount", "error", err, "code", coupon.Code)
		return nil
	}
	if rows == 0 {
		// Usage limit reached since the lookup
		return nil
	}
	return coupon
}

func (b *business) saveShippingAddress(p *placement) saga.Action {
	return func(ctx context.Context) error {
		shipping, err := b.addressRepo.CreateAddress(ctx, addressParams(p.userID, p.req.ShippingAddress, model.AddressTypeShipping))
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to save shipping address"}
		}
		p.shippingAddressID = shipping.ID
		p.billingAddressID = shipping.ID
		return nil
	}
}

func (b *business) saveBillingAddress(p *placement) saga.Action {
	return func(ctx context.Context) error {
		billing, err := b.addressRepo.CreateAddress(ctx, addressParams(p.userID, *p.req.BillingAddress, model.AddressTypeBilling))
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to save billing address"}
		}
		p.billingAddressID = billing.ID
		return nil
	}
}

func (b *business) insertOrder(p *placement) saga.Action {
	return func(ctx context.Context) error {
		params := orders.CreateOrderParams{
			OrderNumber:       newOrderNumber(b.now().Format("20060102")),
			UserID:            p.userID,
			Status:            string(model.OrderStatusPending),
			SubtotalCents:     p.totals.SubtotalCents,
			ShippingCents:     p.totals.ShippingCents,
			TaxCents:          p.totals.TaxCents,
			DiscountCents:     p.totals.DiscountCents,
			TotalCents:        p.totals.TotalCents,
			ShippingAddressID: p.shippingAddressID,
			BillingAddressID:  p.billingAddressID,
			PaymentMethod:     string(p.req.PaymentMethod),
			PaymentStatus:     string(model.PaymentStatusPending),
		}
		if p.totals.Coupon != nil {
			params.CouponCode = pgtype.Text{String: p.totals.Coupon.Code, Valid: true}
		}

		order, err := b.orderRepo.CreateOrder(ctx, params)
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "order is duplicated"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create order"}
		}
		p.order = order
		return nil
	}
}

func (b *business) recordPlaced(p *placement) saga.Action {
	return func(ctx context.Context) error {
		actor := p.userID
		if _, err := b.orderRepo.CreateTimelineEntry(ctx, domain.TimelineParams(p.order.ID, model.OrderStatusPending, &actor, "Order placed")); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record order timeline"}
		}
		return nil
	}
}

func (b *business) insertItems(p *placement) saga.Action {
	return func(ctx context.Context) error {
		p.items = make([]model.OrderItem, 0, len(p.lines))
		for _, line := range p.lines {
			unit := line.Product.EffectivePriceCents()
			item, err := b.orderRepo.CreateOrderItem(ctx, orders.CreateOrderItemParams{
				OrderID:        p.order.ID,
				ProductID:      line.Product.ID,
				ProductName:    line.Product.Name,
				Quantity:       line.Quantity,
				UnitPriceCents: unit,
				TotalCents:     unit * int64(line.Quantity),
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create order items"}
			}
			p.items = append(p.items, domain.ConvertDBOrderItemToModel(item))
		}
		return nil
	}
}

func (b *business) attachNote(p *placement) saga.Action {
	return func(ctx context.Context) error {
		note := strings.TrimSpace(p.req.Notes)
		if note == "" {
			return nil
		}
		if err := b.orderRepo.SetOrderNotes(ctx, orders.SetOrderNotesParams{
			ID:    p.order.ID,
			Notes: pgtype.Text{String: note, Valid: true},
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to attach order note"}
		}
		p.order.Notes = pgtype.Text{String: note, Valid: true}
		return nil
	}
}

func (b *business) decrementStock(line model.CartLine) saga.Action {
	return func(ctx context.Context) error {
		_, err := b.productRepo.DecrementStock(ctx, products.DecrementStockParams{
			ID:       line.Product.ID,
			Quantity: line.Quantity,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			// Someone else bought the remaining units after the stock gate
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("Insufficient stock for %s.", line.Product.Name),
			}
		}
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update stock"}
		}
		return nil
	}
}

func (b *business) restoreCart(p *placement) saga.Action {
	return func(ctx context.Context) error {
		var errList []error
		for _, line := range p.lines {
			errList = append(errList, b.cartRepo.RestoreCartItem(ctx, carts.RestoreCartItemParams{
				ID:        line.CartItemID,
				UserID:    p.userID,
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
			}))
		}
		return errors.Join(errList...)
	}
}

// recordOrderCreated writes the audit entry. The order already exists, so failures are only logged.
func (b *business) recordOrderCreated(ctx context.Context, p *placement) {
	details, err := json.Marshal(map[string]any{
		"order_number": p.order.OrderNumber,
		"total_cents":  p.order.TotalCents,
		"items":        len(p.items),
	})
	if err != nil {
		rlog.Warn("failed to encode audit details", "error", err, "order_id", p.order.ID)
		return
	}

	if err := b.auditRepo.CreateActivityLog(ctx, audit.CreateActivityLogParams{
		UserID:     uuid.NullUUID{UUID: p.userID, Valid: true},
		Action:     "order_created",
		EntityType: "order",
		EntityID:   p.order.ID.String(),
		Details:    details,
	}); err != nil {
		rlog.Warn("failed to record audit log", "error", err, "order_id", p.order.ID)
	}
}

func addressParams(userID uuid.UUID, a model.Address, kind model.AddressType) addresses.CreateAddressParams {
	country := a.Country
	if country == "" {
		country = "India"
	}
	return addresses.CreateAddressParams{
		UserID:   userID,
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    pgtype.Text{String: a.Line2, Valid: a.Line2 != ""},
		City:     a.City,
		State:    a.State,
		Pincode:  a.Pincode,
		Country:  country,
		Type:     string(kind),
	}
}

// newOrderNumber is NZ-<yyyymmdd>-<6 random hex digits, upper case>.
func newOrderNumber(day string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("NZ-%s-%s", day, strings.ToUpper(id[:6]))
}
