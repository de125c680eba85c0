package model

import "time"

// ShipmentStatus describes the logistics lifecycle.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

// Shipment records logistics details attached to an existing order.
// Several shipments may reference one order.
type Shipment struct {
	ID              int64
	OrderID         int64
	Order           *Order
	ContainerNo     *string
	VesselName      *string
	PortOfLoading   *string
	PortOfDischarge *string
	ETD             *time.Time
	ETA             *time.Time
	Carrier         *string
	Notes           *string
	Status          ShipmentStatus
	CreatedBy       int64
	CreatedAt       time.Time
}
