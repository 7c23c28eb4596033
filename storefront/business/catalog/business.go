package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/storefront/cache"
	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/products"
)

type Business interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context, limit, offset int32) (*ProductPage, error)
	// Invalidate drops cached product views after their stock or price changed.
	Invalidate(ctx context.Context, ids ...uuid.UUID)
}

// ProductPage is one page of the active catalogue.
type ProductPage struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
}

type business struct {
	productRepo products.Querier
	cache       *cache.Cache
	ttl         time.Duration
	// listGen is part of every list page key; bumping it orphans cached pages
	listGen atomic.Uint64
}

// NewCatalogBusiness creates product reads backed by the memory cache tier
func NewCatalogBusiness(productRepo products.Querier, c *cache.Cache, ttl time.Duration) Business {
	return &business{
		productRepo: productRepo,
		cache:       c,
		ttl:         ttl,
	}
}

func productKey(id uuid.UUID) string {
	return "product:" + id.String()
}

func (b *business) opts() cache.SetOptions {
	return cache.SetOptions{TTL: b.ttl, Tier: cache.TierMemory}
}

// GetProduct reads through the cache. Inactive products are not found.
func (b *business) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := cache.Remember(ctx, b.cache, productKey(id), b.opts(), func(ctx context.Context) (model.Product, error) {
		row, err := b.productRepo.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.Product{}, &errs.Error{Code: errs.NotFound, Message: "product not found"}
			}
			return model.Product{}, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
		}
		return domain.ConvertDBProductToModel(row), nil
	})
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
	}
	return &product, nil
}

func (b *business) ListProducts(ctx context.Context, limit, offset int32) (*ProductPage, error) {
	key := fmt.Sprintf("products:%d:%d:%d", b.listGen.Load(), limit, offset)
	page, err := cache.Remember(ctx, b.cache, key, b.opts(), func(ctx context.Context) (ProductPage, error) {
		rows, err := b.productRepo.ListProducts(ctx, products.ListProductsParams{Limit: limit, Offset: offset})
		if err != nil {
			return ProductPage{}, &errs.Error{Code: errs.Internal, Message: "failed to list products"}
		}
		total, err := b.productRepo.CountProducts(ctx)
		if err != nil {
			return ProductPage{}, &errs.Error{Code: errs.Internal, Message: "failed to count products"}
		}

		page := ProductPage{Products: make([]model.Product, 0, len(rows)), Total: total}
		for _, row := range rows {
			page.Products = append(page.Products, domain.ConvertDBProductToModel(row))
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (b *business) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	if len(ids) > 0 {
		// Pages embed stock and price too
		b.listGen.Add(1)
	}
	for _, id := range ids {
		b.cache.Delete(ctx, productKey(id), cache.TierMemory)
	}
}
