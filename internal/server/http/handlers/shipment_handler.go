package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	"github.com/nafru/exportdesk/internal/server/http/dto"
)

// ShipmentHandler manages shipment endpoints.
type ShipmentHandler struct {
	facade ShipmentFacade
}

// NewShipmentHandler constructs ShipmentHandler.
func NewShipmentHandler(facade ShipmentFacade) *ShipmentHandler {
	return &ShipmentHandler{facade: facade}
}

// Create handles POST /api/shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "order_id is required")
		return
	}

	etd, err := parseShipmentDate(req.ETD)
	if err != nil {
		respondBadRequest(c, "etd must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}
	eta, err := parseShipmentDate(req.ETA)
	if err != nil {
		respondBadRequest(c, "eta must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}

	shipment, err := h.facade.CreateShipment(c.Request.Context(), CurrentUser(c), repository.NewShipment{
		OrderID:         req.OrderID,
		ContainerNo:     req.ContainerNo,
		VesselName:      req.VesselName,
		PortOfLoading:   req.PortOfLoading,
		PortOfDischarge: req.PortOfDischarge,
		ETD:             etd,
		ETA:             eta,
		Carrier:         req.Carrier,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShipmentResponse(shipment))
}

// List handles GET /api/shipments.
func (h *ShipmentHandler) List(c *gin.Context) {
	filter := repository.ShipmentFilter{
		Status: model.ShipmentStatus(c.Query("status")),
		Page:   pageFromQuery(c),
	}

	shipments, pagination, err := h.facade.Shipments(c.Request.Context(), CurrentUser(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ShipmentListResponse{
		Shipments:  make([]dto.ShipmentResponse, 0, len(shipments)),
		Pagination: pagination,
	}
	for i := range shipments {
		resp.Shipments = append(resp.Shipments, dto.ToShipmentResponse(&shipments[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func parseShipmentDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
