package repository

import (
	"context"
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// ShipmentFilter narrows shipment listings. CustomerID scopes through the
// shipment's parent order.
type ShipmentFilter struct {
	Status     model.ShipmentStatus
	CustomerID *int64
	Page       model.PageRequest
}

// NewShipment is the input for shipment creation.
type NewShipment struct {
	OrderID         int64
	ContainerNo     *string
	VesselName      *string
	PortOfLoading   *string
	PortOfDischarge *string
	ETD             *time.Time
	ETA             *time.Time
	Carrier         *string
	Notes           *string
	CreatedBy       int64
}

// ShipmentRepository describes persistence operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment NewShipment) (*model.Shipment, error)
	List(ctx context.Context, filter ShipmentFilter) ([]model.Shipment, int, error)
}
