package services

import (
	"context"

	"order-api/models"
	"order-api/repository"
)

// IProductService defines product lookups.
type IProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
}

// ProductService implements IProductService.
type ProductService struct {
	productRepo repository.IProductRepository
}

// NewProductService creates a new ProductService instance.
func NewProductService(repo repository.IProductRepository) IProductService {
	return &ProductService{productRepo: repo}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.productRepo.FindProductByID(ctx, id)
}
