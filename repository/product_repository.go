package repository

import (
	"context"

	"gorm.io/gorm"

	"order-api/models"
)

// IProductRepository defines the read side for products.
type IProductRepository interface {
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// ProductRepository implements IProductRepository for GORM.
type ProductRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return findProduct(r.DB.WithContext(ctx), "product_id = ?", id)
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).Order("product_id").Find(&products).Error
	return products, err
}
