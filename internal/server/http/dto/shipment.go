package dto

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// CreateShipmentRequest describes shipment creation payload. Date fields are
// RFC 3339 timestamps or plain dates; absent values store nothing.
type CreateShipmentRequest struct {
	OrderID         int64   `json:"order_id" binding:"required"`
	ContainerNo     *string `json:"container_no"`
	VesselName      *string `json:"vessel_name"`
	PortOfLoading   *string `json:"port_of_loading"`
	PortOfDischarge *string `json:"port_of_discharge"`
	ETD             *string `json:"etd"`
	ETA             *string `json:"eta"`
	Carrier         *string `json:"carrier"`
	Notes           *string `json:"notes"`
}

// ShipmentResponse is the public projection of a shipment.
type ShipmentResponse struct {
	ID              int64      `json:"id"`
	OrderID         int64      `json:"order_id"`
	OrderNo         string     `json:"order_no,omitempty"`
	ContainerNo     *string    `json:"container_no,omitempty"`
	VesselName      *string    `json:"vessel_name,omitempty"`
	PortOfLoading   *string    `json:"port_of_loading,omitempty"`
	PortOfDischarge *string    `json:"port_of_discharge,omitempty"`
	ETD             *time.Time `json:"etd,omitempty"`
	ETA             *time.Time `json:"eta,omitempty"`
	Carrier         *string    `json:"carrier,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Status          string     `json:"status"`
	CreatedBy       int64      `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ShipmentListResponse pairs shipments with pagination info.
type ShipmentListResponse struct {
	Shipments  []ShipmentResponse `json:"shipments"`
	Pagination model.Pagination   `json:"pagination"`
}

// ToShipmentResponse projects a shipment for API output.
func ToShipmentResponse(s *model.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:              s.ID,
		OrderID:         s.OrderID,
		ContainerNo:     s.ContainerNo,
		VesselName:      s.VesselName,
		PortOfLoading:   s.PortOfLoading,
		PortOfDischarge: s.PortOfDischarge,
		ETD:             s.ETD,
		ETA:             s.ETA,
		Carrier:         s.Carrier,
		Notes:           s.Notes,
		Status:          string(s.Status),
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
	}
	if s.Order != nil {
		resp.OrderNo = s.Order.OrderNo
	}
	return resp
}
