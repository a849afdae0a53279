package product

import (
	"context"
)

type Service interface {
	ListProducts(ctx context.Context, query *ListQuery) (*ProductList, error)
}

type service struct {
	productRepository Repository
}

func NewService(productRepository Repository) Service {
	return &service{
		productRepository: productRepository,
	}
}

// ListProducts returns one page of products together with the total count,
// so clients can derive the page count themselves.
func (s *service) ListProducts(ctx context.Context, query *ListQuery) (*ProductList, error) {
	products, err := s.productRepository.FindProducts(ctx, query.Limit, query.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.productRepository.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &ProductList{
		ProductData: products,
		Pagination: Pagination{
			Total: total,
			Page:  query.Page,
			Limit: query.Limit,
		},
	}, nil
}
