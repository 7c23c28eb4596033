package storefront

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/storefront/business/catalog"
	"encore.app/storefront/model"
)

type ProductResponse struct {
	Product model.Product `json:"product"`
}

//encore:api public path=/v1/products/:id method=GET
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	productID, err := parseID(id, "product")
	if err != nil {
		return nil, err
	}

	result, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		rlog.Error("failed to get product", "error", err, "id", id)
		return nil, err
	}

	return &ProductResponse{
		Product: *result,
	}, nil
}

type ListProductsParams struct {
	Limit  int32 `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int32 `query:"offset" validate:"omitempty,min=0"`
}

// Validate implements validation for ListProductsParams
func (p *ListProductsParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

//encore:api public path=/v1/products method=GET
func (s *Service) ListProducts(ctx context.Context, params *ListProductsParams) (*catalog.ProductPage, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	page, err := s.catalog.ListProducts(ctx, limit, params.Offset)
	if err != nil {
		rlog.Error("failed to list products", "error", err, "limit", limit, "offset", params.Offset)
		return nil, err
	}
	return page, nil
}
