// Package orderrepo persists order aggregates. Items and the status timeline
// are stored as JSONB documents inside the orders row so a single read
// rehydrates the whole aggregate.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"index"`
	Phone         string
	Items         []byte `gorm:"type:jsonb"`
	Address       string
	Delivery      bool
	PickupTime    string
	TableNumber   int
	PaymentMethod string
	Notes         string
	Total         float64
	DeliveryFee   float64
	Status        int    `gorm:"index"`
	Timeline      []byte `gorm:"type:jsonb"`
	Payment       bool
	ReceivedTime  *time.Time
	PlacedAt      time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database row, serializing
// items and the timeline to JSON.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	details := aggregate.Details()

	items, err := json.Marshal(details.Items)
	if err != nil {
		return OrderDTO{}, err
	}

	timeline, err := json.Marshal(aggregate.Timeline())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		Name:          details.CustomerName,
		Phone:         details.Phone,
		Items:         items,
		Address:       details.Address,
		Delivery:      details.Delivery,
		PickupTime:    details.PickupTime,
		TableNumber:   details.TableNumber,
		PaymentMethod: details.PaymentMethod,
		Notes:         details.Notes,
		Total:         details.Total,
		DeliveryFee:   details.DeliveryFee,
		Status:        int(aggregate.Status()),
		Timeline:      timeline,
		Payment:       aggregate.Paid(),
		ReceivedTime:  aggregate.ReceivedTime(),
		PlacedAt:      aggregate.PlacedAt(),
	}, nil
}

// toDomain converts a database row back to an order aggregate via
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var items []order.Item
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &items); err != nil {
			return nil, err
		}
	}

	var timeline order.Timeline
	if len(dto.Timeline) > 0 {
		if err := json.Unmarshal(dto.Timeline, &timeline); err != nil {
			return nil, err
		}
	}

	details := order.Details{
		CustomerName:  dto.Name,
		Phone:         dto.Phone,
		Items:         items,
		Address:       dto.Address,
		Delivery:      dto.Delivery,
		PickupTime:    dto.PickupTime,
		TableNumber:   dto.TableNumber,
		PaymentMethod: dto.PaymentMethod,
		Notes:         dto.Notes,
		Total:         dto.Total,
		DeliveryFee:   dto.DeliveryFee,
	}

	state := order.State{
		Status:       order.Status(dto.Status),
		Timeline:     timeline,
		Paid:         dto.Payment,
		ReceivedTime: dto.ReceivedTime,
		PlacedAt:     dto.PlacedAt,
	}

	return order.RestoreOrder(dto.ID, details, state)
}
