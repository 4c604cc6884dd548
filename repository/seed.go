package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"order-api/models"
)

// SeedResult counts rows inserted by Seed; rows that already existed are skipped.
type SeedResult struct {
	Customers int
	Products  int
}

// DefaultCustomers are the sample customers inserted by the seed command.
var DefaultCustomers = []models.Customer{
	{FirstName: "Budi", LastName: "Santoso", Email: "budi@example.com"},
	{FirstName: "Siti", LastName: "Rahayu", Email: "siti@example.com"},
	{FirstName: "Joko", LastName: "Susilo", Email: "joko@example.com"},
}

// DefaultProducts are the sample products inserted by the seed command.
var DefaultProducts = []models.Product{
	{Name: "Laptop", Price: decimal.RequireFromString("1200.00")},
	{Name: "Mouse", Price: decimal.RequireFromString("25.50")},
	{Name: "Keyboard", Price: decimal.RequireFromString("49.99")},
}

// Seed inserts customers (matched by email) and products (matched by name)
// that are not present yet. Running it twice is a no-op.
func Seed(ctx context.Context, db *gorm.DB, customers []models.Customer, products []models.Product) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range customers {
			if c.Email == "" || c.FirstName == "" || c.LastName == "" {
				return fmt.Errorf("customer %q: names and email are required", c.Email)
			}
			created, err := insertMissing(tx, &c, "email = ?", c.Email)
			if err != nil {
				return fmt.Errorf("seed customer %s: %w", c.Email, err)
			}
			if created {
				res.Customers++
			}
		}
		for _, p := range products {
			if p.Name == "" {
				return errors.New("product name is required")
			}
			if p.Price.IsNegative() {
				return fmt.Errorf("product %s: price cannot be negative", p.Name)
			}
			p.Price = p.Price.Round(2)
			created, err := insertMissing(tx, &p, "name = ?", p.Name)
			if err != nil {
				return fmt.Errorf("seed product %s: %w", p.Name, err)
			}
			if created {
				res.Products++
			}
		}
		return nil
	})
	return res, err
}

func insertMissing[T any](tx *gorm.DB, row *T, query string, arg any) (bool, error) {
	var existing T
	err := tx.Where(query, arg).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
