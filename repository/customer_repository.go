package repository

import (
	"context"

	"gorm.io/gorm"

	"order-api/models"
)

// ICustomerRepository defines the read side for customers and their orders.
type ICustomerRepository interface {
	FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CountOrdersPerCustomer(ctx context.Context) ([]models.CustomerOrderCount, error)
	PurchaseHistory(ctx context.Context, customerID uint) ([]models.PurchaseHistoryEntry, error)
}

// CustomerRepository implements ICustomerRepository for GORM.
type CustomerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository instance.
func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return findCustomer(r.DB.WithContext(ctx), "customer_id = ?", id)
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.WithContext(ctx).Order("customer_id").Find(&customers).Error
	return customers, err
}

// CountOrdersPerCustomer counts orders per customer. The inner join leaves
// out customers that never ordered.
func (r *CustomerRepository) CountOrdersPerCustomer(ctx context.Context) ([]models.CustomerOrderCount, error) {
	counts := []models.CustomerOrderCount{}
	err := r.DB.WithContext(ctx).
		Table("customers").
		Select("customers.customer_id, customers.first_name, customers.last_name, customers.email, COUNT(orders.order_id) AS total_products").
		Joins("JOIN orders ON orders.customer_id = customers.customer_id").
		Group("customers.customer_id, customers.first_name, customers.last_name, customers.email").
		Order("customers.customer_id").
		Scan(&counts).Error
	return counts, err
}

// PurchaseHistory lists a customer's orders with the product name joined in.
func (r *CustomerRepository) PurchaseHistory(ctx context.Context, customerID uint) ([]models.PurchaseHistoryEntry, error) {
	entries := []models.PurchaseHistoryEntry{}
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.order_id, orders.product_id, products.name AS product_name, orders.quantity, orders.created_at").
		Joins("JOIN products ON products.product_id = orders.product_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.order_id").
		Scan(&entries).Error
	return entries, err
}
