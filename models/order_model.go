package models

import "time"

// Order represents a single order placed by a customer for one product.
type Order struct {
	ID         uint      `json:"order_id" gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID uint      `json:"customer_id" gorm:"not null;uniqueIndex:idx_orders_dedup,priority:1"`
	Customer   Customer  `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // Belongs To association
	ProductID  uint      `json:"product_id" gorm:"not null;index;uniqueIndex:idx_orders_dedup,priority:2"`
	Product    Product   `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // Belongs To association
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;index"`
	// DedupBucket is CreatedAt divided into duplicate-window slots. The unique
	// index on (customer, product, bucket) stops racing double submissions.
	DedupBucket int64 `json:"-" gorm:"not null;uniqueIndex:idx_orders_dedup,priority:3"`
}

// DedupBucketFor returns the duplicate-window slot that t falls into.
func DedupBucketFor(t time.Time, window time.Duration) int64 {
	seconds := int64(window / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	return t.Unix() / seconds
}

// DetachedDedupBucket is the slot given to an order whose customer or product
// changed after creation. It is unique per order and never a real slot, so
// such an order no longer takes part in duplicate detection by index.
func DetachedDedupBucket(orderID uint) int64 {
	return -int64(orderID)
}

// PurchaseHistoryEntry is one order of a customer with the product name joined in.
type PurchaseHistoryEntry struct {
	OrderID     uint      `json:"order_id"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}
