package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"order-api/models"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. A returned error rolls everything back.
	Transaction(ctx context.Context, fn func(repo IOrderRepository) error) error

	FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	FindProductByName(ctx context.Context, name string) (*models.Product, error)

	HasRecentOrder(ctx context.Context, customerID, productID uint, since time.Time) (bool, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	FindOrderByID(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id uint, updates map[string]any) error
	DeleteOrder(ctx context.Context, id uint) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Transaction(ctx context.Context, fn func(repo IOrderRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderRepository{DB: tx})
	})
}

// FindCustomerByID retrieves a customer by their ID.
func (r *OrderRepository) FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return findCustomer(r.DB.WithContext(ctx), "customer_id = ?", id)
}

// FindCustomerByEmail retrieves a customer by their unique email.
func (r *OrderRepository) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return findCustomer(r.DB.WithContext(ctx), "email = ?", email)
}

func (r *OrderRepository) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return findProduct(r.DB.WithContext(ctx), "product_id = ?", id)
}

// FindProductByName returns the oldest product with the given name; names
// are not unique.
func (r *OrderRepository) FindProductByName(ctx context.Context, name string) (*models.Product, error) {
	return findProduct(r.DB.WithContext(ctx), "name = ?", name)
}

// HasRecentOrder reports whether the customer ordered the product strictly after since.
func (r *OrderRepository) HasRecentOrder(ctx context.Context, customerID, productID uint, since time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("customer_id = ? AND product_id = ? AND created_at > ?", customerID, productID, since).
		Count(&count).Error
	return count > 0, err
}

// CreateOrder inserts the order row only; customer and product must already exist.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateOrder
	}
	return err
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).Order("order_id").Find(&orders).Error
	return orders, err
}

// UpdateOrder applies column updates to a single order.
func (r *OrderRepository) UpdateOrder(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("order_id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Order{}, "order_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func findCustomer(db *gorm.DB, query string, arg any) (*models.Customer, error) {
	var customer models.Customer
	if err := db.First(&customer, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func findProduct(db *gorm.DB, query string, arg any) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}
