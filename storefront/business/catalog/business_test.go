package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/storefront/cache"
	"encore.app/storefront/mocks/repository/product_repo"
	"encore.app/storefront/repository/products"
)

func newMemoryCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(context.Background(), cache.Options{Version: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { c.Dispose(context.Background()) })
	return c
}

func TestGetProduct(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name         string
		mockProduct  products.Product
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name: "active_product",
			mockProduct: products.Product{
				ID:             id,
				Name:           "Silk Saree",
				PriceCents:     50000,
				SalePriceCents: pgtype.Int8{Int64: 45000, Valid: true},
				Stock:          3,
				IsActive:       true,
			},
		},
		{
			name:         "inactive_product_hidden",
			mockProduct:  products.Product{ID: id, Name: "Retired", IsActive: false},
			expectedCode: errs.NotFound,
		},
		{
			name:         "missing",
			mockError:    pgx.ErrNoRows,
			expectedCode: errs.NotFound,
		},
		{
			name:         "database_error",
			mockError:    errors.New("connection refused"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product_repo.NewMockQuerier(ctrl)
			b := NewCatalogBusiness(repo, newMemoryCache(t), time.Minute)

			repo.EXPECT().GetProduct(gomock.Any(), id).Return(tc.mockProduct, tc.mockError).Times(1)

			product, err := b.GetProduct(context.Background(), id)
			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(45000), product.EffectivePriceCents())

			// Second read is served from the cache
			again, err := b.GetProduct(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, product, again)
		})
	}
}

func TestGetProductErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := product_repo.NewMockQuerier(ctrl)
	b := NewCatalogBusiness(repo, newMemoryCache(t), time.Minute)

	gomock.InOrder(
		repo.EXPECT().GetProduct(gomock.Any(), id).Return(products.Product{}, errors.New("timeout")),
		repo.EXPECT().GetProduct(gomock.Any(), id).Return(products.Product{ID: id, IsActive: true}, nil),
	)

	_, err := b.GetProduct(context.Background(), id)
	assert.Error(t, err)

	product, err := b.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, product.ID)
}

func TestInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := product_repo.NewMockQuerier(ctrl)
	b := NewCatalogBusiness(repo, newMemoryCache(t), time.Minute)

	gomock.InOrder(
		repo.EXPECT().GetProduct(gomock.Any(), id).Return(products.Product{ID: id, Stock: 5, IsActive: true}, nil),
		repo.EXPECT().GetProduct(gomock.Any(), id).Return(products.Product{ID: id, Stock: 3, IsActive: true}, nil),
	)

	first, err := b.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int32(5), first.Stock)

	b.Invalidate(context.Background(), id)

	second, err := b.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int32(3), second.Stock)
}

func TestListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product_repo.NewMockQuerier(ctrl)
	b := NewCatalogBusiness(repo, newMemoryCache(t), time.Minute)

	repo.EXPECT().ListProducts(gomock.Any(), products.ListProductsParams{Limit: 2, Offset: 0}).Return([]products.Product{
		{ID: uuid.New(), Name: "Silk Saree", IsActive: true},
		{ID: uuid.New(), Name: "Cotton Kurta", IsActive: true},
	}, nil).Times(1)
	repo.EXPECT().CountProducts(gomock.Any()).Return(int64(7), nil).Times(1)

	for range 2 {
		page, err := b.ListProducts(context.Background(), 2, 0)
		require.NoError(t, err)
		assert.Len(t, page.Products, 2)
		assert.Equal(t, int64(7), page.Total)
	}
}

func TestInvalidateRefreshesListPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := product_repo.NewMockQuerier(ctrl)
	b := NewCatalogBusiness(repo, newMemoryCache(t), time.Minute)

	params := products.ListProductsParams{Limit: 10, Offset: 0}
	gomock.InOrder(
		repo.EXPECT().ListProducts(gomock.Any(), params).Return([]products.Product{{ID: id, Stock: 5, IsActive: true}}, nil),
		repo.EXPECT().ListProducts(gomock.Any(), params).Return([]products.Product{{ID: id, Stock: 3, IsActive: true}}, nil),
	)
	repo.EXPECT().CountProducts(gomock.Any()).Return(int64(1), nil).Times(2)

	first, err := b.ListProducts(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), first.Products[0].Stock)

	b.Invalidate(context.Background(), id)

	second, err := b.ListProducts(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), second.Products[0].Stock)

	// No ids, nothing to refresh
	b.Invalidate(context.Background())
	third, err := b.ListProducts(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), third.Products[0].Stock)
}
