package models

import "time"

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderCreated OrderEventType = "order.created"
	OrderUpdated OrderEventType = "order.updated"
	OrderDeleted OrderEventType = "order.deleted"
)

// OrderEvent is the message pushed to the order topic after a committed change.
type OrderEvent struct {
	EventID    string         `json:"event_id"`
	Type       OrderEventType `json:"type"`
	OrderID    uint           `json:"order_id"`
	CustomerID uint           `json:"customer_id"`
	ProductID  uint           `json:"product_id"`
	Quantity   int            `json:"quantity"`
	OccurredAt time.Time      `json:"occurred_at"`
}
