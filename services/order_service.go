package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"order-api/models"
	"order-api/repository"
)

// DefaultDuplicateWindow is how long an identical (customer, product) order is rejected.
const DefaultDuplicateWindow = 60 * time.Second

// IOrderService defines the interface for order-related business logic.
type IOrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo repository.IOrderRepository
	publisher IOrderEventPublisher
	window    time.Duration
	now       func() time.Time
	log       logrus.FieldLogger
}

// OrderServiceOption customizes an OrderService.
type OrderServiceOption func(*OrderService)

// WithClock replaces the wall clock used for created_at and the duplicate window.
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderService) { s.now = now }
}

// WithLogger sets the logger used for best-effort event publishing.
func WithLogger(log logrus.FieldLogger) OrderServiceOption {
	return func(s *OrderService) { s.log = log }
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(repo repository.IOrderRepository, publisher IOrderEventPublisher, window time.Duration, opts ...OrderServiceOption) IOrderService {
	if window <= 0 {
		window = DefaultDuplicateWindow
	}
	s := &OrderService{
		orderRepo: repo,
		publisher: publisher,
		window:    window,
		now:       time.Now,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder handles the business logic for creating a new order.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if input.CustomerID == 0 || input.ProductID == 0 || input.Quantity < 1 {
		return nil, ErrInvalidOrderData
	}

	now := s.now().UTC()
	order := &models.Order{
		CustomerID:  input.CustomerID,
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		CreatedAt:   now,
		DedupBucket: models.DedupBucketFor(now, s.window),
	}

	err := s.orderRepo.Transaction(ctx, func(repo repository.IOrderRepository) error {
		// 1. Validasi keberadaan customer dan product
		if _, err := repo.FindCustomerByID(ctx, input.CustomerID); err != nil {
			return err
		}
		if _, err := repo.FindProductByID(ctx, input.ProductID); err != nil {
			return err
		}

		// 2. Tolak pesanan ganda dalam jendela waktu
		recent, err := repo.HasRecentOrder(ctx, input.CustomerID, input.ProductID, now.Add(-s.window))
		if err != nil {
			return fmt.Errorf("failed to check recent orders: %w", err)
		}
		if recent {
			return repository.ErrDuplicateOrder
		}

		// 3. Simpan order
		return repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"product_id":  order.ProductID,
	}).Info("order created")
	s.publish(ctx, models.OrderCreated, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, id)
}

// ListOrders returns every order; an empty table is reported as ErrNoOrders.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}

// UpdateOrder resolves the submitted references and writes only the columns
// whose value actually changes. Updates are never rejected as duplicates.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*models.Order, error) {
	if input.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidOrderData)
	}

	var updated *models.Order
	changed := false
	err := s.orderRepo.Transaction(ctx, func(repo repository.IOrderRepository) error {
		order, err := repo.FindOrderByID(ctx, id)
		if err != nil {
			return err
		}

		customerID, err := resolveCustomer(ctx, repo, input)
		if err != nil {
			return err
		}
		productID, err := resolveProduct(ctx, repo, input)
		if err != nil {
			return err
		}

		updates := map[string]any{}
		if customerID != 0 && customerID != order.CustomerID {
			updates["customer_id"] = customerID
			order.CustomerID = customerID
		}
		if productID != 0 && productID != order.ProductID {
			updates["product_id"] = productID
			order.ProductID = productID
		}
		// A moved order leaves its creation slot in the dedup index.
		if len(updates) > 0 {
			order.DedupBucket = models.DetachedDedupBucket(order.ID)
			updates["dedup_bucket"] = order.DedupBucket
		}
		if input.Quantity != nil && *input.Quantity != order.Quantity {
			updates["quantity"] = *input.Quantity
			order.Quantity = *input.Quantity
		}

		updated = order
		if len(updates) == 0 {
			return nil
		}
		changed = true
		return repo.UpdateOrder(ctx, id, updates)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(ctx, models.OrderUpdated, updated)
	}
	return updated, nil
}

// DeleteOrder removes an order. Any failure rolls the transaction back.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	var deleted *models.Order
	err := s.orderRepo.Transaction(ctx, func(repo repository.IOrderRepository) error {
		order, err := repo.FindOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteOrder(ctx, id); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, models.OrderDeleted, deleted)
	return nil
}

// resolveCustomer returns the customer id referenced by id and/or email,
// or 0 when the input does not touch the customer.
func resolveCustomer(ctx context.Context, repo repository.IOrderRepository, input UpdateOrderInput) (uint, error) {
	var id uint
	if input.CustomerID != nil {
		c, err := repo.FindCustomerByID(ctx, *input.CustomerID)
		if err != nil {
			return 0, err
		}
		id = c.ID
	}
	if input.CustomerEmail != nil {
		c, err := repo.FindCustomerByEmail(ctx, *input.CustomerEmail)
		if err != nil {
			return 0, err
		}
		if id != 0 && id != c.ID {
			return 0, fmt.Errorf("%w: customer_id and customer_email refer to different customers", ErrInvalidOrderData)
		}
		id = c.ID
	}
	return id, nil
}

// resolveProduct returns the product id referenced by id and/or name,
// or 0 when the input does not touch the product.
func resolveProduct(ctx context.Context, repo repository.IOrderRepository, input UpdateOrderInput) (uint, error) {
	var id uint
	if input.ProductID != nil {
		p, err := repo.FindProductByID(ctx, *input.ProductID)
		if err != nil {
			return 0, err
		}
		id = p.ID
	}
	if input.ProductName != nil {
		p, err := repo.FindProductByName(ctx, *input.ProductName)
		if err != nil {
			return 0, err
		}
		if id != 0 && id != p.ID {
			return 0, fmt.Errorf("%w: product_id and product_name refer to different products", ErrInvalidOrderData)
		}
		id = p.ID
	}
	return id, nil
}

// publish is best effort: the order is already committed, so a failed push is
// logged and never reported to the caller.
func (s *OrderService) publish(ctx context.Context, eventType models.OrderEventType, order *models.Order) {
	event := models.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"order_id": order.ID,
			"type":     eventType,
		}).WithError(err).Warn("failed to publish order event")
	}
}
