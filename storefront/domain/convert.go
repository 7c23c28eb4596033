package domain

import (
	"strings"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/addresses"
	"encore.app/storefront/repository/carts"
	"encore.app/storefront/repository/coupons"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/products"
)

// ConvertDBOrderToModel converts a database Order to a domain model Order
func ConvertDBOrderToModel(o orders.Order) *model.Order {
	order := &model.Order{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		UserID:            o.UserID,
		Status:            model.OrderStatus(o.Status),
		SubtotalCents:     o.SubtotalCents,
		ShippingCents:     o.ShippingCents,
		TaxCents:          o.TaxCents,
		DiscountCents:     o.DiscountCents,
		TotalCents:        o.TotalCents,
		ShippingAddressID: o.ShippingAddressID,
		BillingAddressID:  o.BillingAddressID,
		PaymentMethod:     model.PaymentMethod(o.PaymentMethod),
		PaymentStatus:     model.PaymentStatus(o.PaymentStatus),
		CreatedAt:         o.CreatedAt.Time,
		UpdatedAt:         o.UpdatedAt.Time,
	}
	if o.CouponCode.Valid {
		order.CouponCode = &o.CouponCode.String
	}
	if o.Notes.Valid {
		order.Notes = &o.Notes.String
	}
	return order
}

func ConvertDBOrderItemToModel(i orders.OrderItem) model.OrderItem {
	return model.OrderItem{
		ID:             i.ID,
		OrderID:        i.OrderID,
		ProductID:      i.ProductID,
		ProductName:    i.ProductName,
		Quantity:       i.Quantity,
		UnitPriceCents: i.UnitPriceCents,
		TotalCents:     i.TotalCents,
	}
}

func ConvertDBTimelineToModel(t orders.OrderTimeline) model.TimelineEntry {
	entry := model.TimelineEntry{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Status:    model.OrderStatus(t.Status),
		Note:      t.Note.String,
		CreatedAt: t.CreatedAt.Time,
	}
	if t.ActorID.Valid {
		actor := t.ActorID.UUID
		entry.ActorID = &actor
	}
	return entry
}

func ConvertDBNoteToModel(n orders.OrderNote) model.OrderNote {
	return model.OrderNote{
		ID:         n.ID,
		OrderID:    n.OrderID,
		AuthorID:   n.AuthorID,
		Body:       n.Body,
		IsInternal: n.IsInternal,
		CreatedAt:  n.CreatedAt.Time,
	}
}

func ConvertDBProductToModel(p products.Product) model.Product {
	product := model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description.String,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
	if p.SalePriceCents.Valid {
		sale := p.SalePriceCents.Int64
		product.SalePriceCents = &sale
	}
	return product
}

func ConvertDBCartLineToModel(r carts.GetCartLinesRow) model.CartLine {
	line := model.CartLine{
		CartItemID: r.CartItemID,
		Quantity:   r.Quantity,
		Product: model.Product{
			ID:         r.ProductID,
			Name:       r.Name,
			Slug:       r.Slug,
			PriceCents: r.PriceCents,
			Stock:      r.Stock,
			IsActive:   r.IsActive,
		},
	}
	if r.SalePriceCents.Valid {
		sale := r.SalePriceCents.Int64
		line.Product.SalePriceCents = &sale
	}
	return line
}

func ConvertDBCouponToModel(c coupons.Coupon) model.Coupon {
	coupon := model.Coupon{
		ID:               c.ID,
		Code:             c.Code,
		DiscountType:     model.DiscountType(c.DiscountType),
		DiscountValue:    c.DiscountValue,
		MinPurchaseCents: c.MinPurchaseCents,
		UsedCount:        c.UsedCount,
		StartDate:        c.StartDate.Time,
		IsActive:         c.IsActive,
	}
	if c.UsageLimit.Valid {
		limit := c.UsageLimit.Int32
		coupon.UsageLimit = &limit
	}
	if c.EndDate.Valid {
		end := c.EndDate.Time
		coupon.EndDate = &end
	}
	return coupon
}

func ConvertDBAddressToModel(a addresses.Address) model.Address {
	return model.Address{
		ID:        a.ID,
		UserID:    a.UserID,
		FullName:  a.FullName,
		Phone:     a.Phone,
		Line1:     a.Line1,
		Line2:     a.Line2.String,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Country:   a.Country,
		Type:      model.AddressType(a.Type),
		CreatedAt: a.CreatedAt.Time,
	}
}

// NormalizeCouponCode is the form coupon codes are compared in.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
