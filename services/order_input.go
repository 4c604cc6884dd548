package services

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// CreateOrderInput is a validated POST /orders body.
type CreateOrderInput struct {
	CustomerID uint
	ProductID  uint
	Quantity   int
}

// UpdateOrderInput is a validated PUT /orders/{id} body. Nil fields are left unchanged.
// A customer can be referenced by id or email, a product by id or name.
type UpdateOrderInput struct {
	CustomerID    *uint
	CustomerEmail *string
	ProductID     *uint
	ProductName   *string
	Quantity      *int
}

// IsEmpty reports whether no field was submitted.
func (in UpdateOrderInput) IsEmpty() bool {
	return in.CustomerID == nil && in.CustomerEmail == nil &&
		in.ProductID == nil && in.ProductName == nil && in.Quantity == nil
}

var createOrderFields = []string{"customer_id", "product_id", "quantity"}

var updateOrderFields = map[string]bool{
	"customer_id":    true,
	"customer_email": true,
	"product_id":     true,
	"product_name":   true,
	"quantity":       true,
}

// ParseCreateOrderInput decodes a create request. The body must hold exactly
// customer_id, product_id and quantity.
func ParseCreateOrderInput(body []byte) (CreateOrderInput, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return CreateOrderInput{}, err
	}
	for _, key := range sortedKeys(raw) {
		if !slices.Contains(createOrderFields, key) {
			return CreateOrderInput{}, fmt.Errorf("%w: unexpected field %q", ErrInvalidOrderData, key)
		}
	}
	for _, key := range createOrderFields {
		if _, ok := raw[key]; !ok {
			return CreateOrderInput{}, fmt.Errorf("%w: %s is required", ErrInvalidOrderData, key)
		}
	}

	var in CreateOrderInput
	if in.CustomerID, err = decodeID(raw, "customer_id"); err != nil {
		return CreateOrderInput{}, err
	}
	if in.ProductID, err = decodeID(raw, "product_id"); err != nil {
		return CreateOrderInput{}, err
	}
	if in.Quantity, err = decodeQuantity(raw); err != nil {
		return CreateOrderInput{}, err
	}
	return in, nil
}

// ParseUpdateOrderInput decodes an update request field by field. Keys outside
// the update whitelist fail with ErrForbiddenField.
func ParseUpdateOrderInput(body []byte) (UpdateOrderInput, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return UpdateOrderInput{}, err
	}
	for _, key := range sortedKeys(raw) {
		if !updateOrderFields[key] {
			return UpdateOrderInput{}, fmt.Errorf("%w: %s", ErrForbiddenField, key)
		}
	}

	var in UpdateOrderInput
	if _, ok := raw["customer_id"]; ok {
		id, err := decodeID(raw, "customer_id")
		if err != nil {
			return UpdateOrderInput{}, err
		}
		in.CustomerID = &id
	}
	if _, ok := raw["customer_email"]; ok {
		email, err := decodeName(raw, "customer_email")
		if err != nil {
			return UpdateOrderInput{}, err
		}
		in.CustomerEmail = &email
	}
	if _, ok := raw["product_id"]; ok {
		id, err := decodeID(raw, "product_id")
		if err != nil {
			return UpdateOrderInput{}, err
		}
		in.ProductID = &id
	}
	if _, ok := raw["product_name"]; ok {
		name, err := decodeName(raw, "product_name")
		if err != nil {
			return UpdateOrderInput{}, err
		}
		in.ProductName = &name
	}
	if _, ok := raw["quantity"]; ok {
		qty, err := decodeQuantity(raw)
		if err != nil {
			return UpdateOrderInput{}, err
		}
		in.Quantity = &qty
	}
	if in.IsEmpty() {
		return UpdateOrderInput{}, fmt.Errorf("%w: no fields to update", ErrInvalidOrderData)
	}
	return in, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidOrderData)
	}
	return raw, nil
}

func decodeID(raw map[string]json.RawMessage, key string) (uint, error) {
	var v int64
	if err := json.Unmarshal(raw[key], &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidOrderData, key)
	}
	return uint(v), nil
}

func decodeQuantity(raw map[string]json.RawMessage) (int, error) {
	var v int
	if err := json.Unmarshal(raw["quantity"], &v); err != nil || v < 1 {
		return 0, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidOrderData)
	}
	return v, nil
}

func decodeName(raw map[string]json.RawMessage, key string) (string, error) {
	var v string
	if err := json.Unmarshal(raw[key], &v); err != nil || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidOrderData, key)
	}
	return strings.TrimSpace(v), nil
}

// sortedKeys keeps error messages deterministic when several keys are bad.
func sortedKeys(raw map[string]json.RawMessage) []string {
	return slices.Sorted(maps.Keys(raw))
}
