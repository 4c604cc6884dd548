package models

import "time"

// Customer model represents a user who places orders.
type Customer struct {
	ID        uint      `json:"customer_id" gorm:"column:customer_id;primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"size:255;not null"`
	LastName  string    `json:"last_name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	Orders    []Order   `json:"-" gorm:"foreignKey:CustomerID"`
}

// CustomerOrderCount is a customer together with how many orders they placed.
type CustomerOrderCount struct {
	CustomerID    uint   `json:"customer_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	TotalProducts int64  `json:"total_products"`
}
