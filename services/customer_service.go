package services

import (
	"context"

	"order-api/models"
	"order-api/repository"
)

// ICustomerService defines customer listings and the per-customer aggregates.
type ICustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CustomersByOrderCount(ctx context.Context) ([]models.CustomerOrderCount, error)
	PurchaseHistory(ctx context.Context, customerID uint) ([]models.PurchaseHistoryEntry, error)
}

// CustomerService implements ICustomerService.
type CustomerService struct {
	customerRepo repository.ICustomerRepository
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.ICustomerRepository) ICustomerService {
	return &CustomerService{customerRepo: repo}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	return customers, nil
}

// CustomersByOrderCount never fails on an empty result; customers without
// orders are simply absent.
func (s *CustomerService) CustomersByOrderCount(ctx context.Context) ([]models.CustomerOrderCount, error) {
	counts, err := s.customerRepo.CountOrdersPerCustomer(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.CustomerOrderCount{}
	}
	return counts, nil
}

// PurchaseHistory returns repository.ErrCustomerNotFound for unknown customers
// and an empty slice for customers that never ordered.
func (s *CustomerService) PurchaseHistory(ctx context.Context, customerID uint) ([]models.PurchaseHistoryEntry, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	history, err := s.customerRepo.PurchaseHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.PurchaseHistoryEntry{}
	}
	return history, nil
}
