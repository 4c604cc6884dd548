package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item that can be ordered.
type Product struct {
	ID        uint            `json:"product_id" gorm:"column:product_id;primaryKey;autoIncrement"`
	Name      string          `json:"name" gorm:"size:255;not null;index"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
}

// MarshalJSON renders the price with exactly two fractional digits.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Price string `json:"price"`
	}{product(p), p.Price.StringFixed(2)})
}
