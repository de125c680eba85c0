package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/domain/repository"
	"github.com/nafru/exportdesk/internal/server/http/dto"
)

// DocumentHandler manages trade document endpoints.
type DocumentHandler struct {
	facade DocumentFacade
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(facade DocumentFacade) *DocumentHandler {
	return &DocumentHandler{facade: facade}
}

// Generate handles POST /api/documents.
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "order_id and a recognized document type are required")
		return
	}

	doc, pdf, err := h.facade.GenerateDocument(c.Request.Context(), CurrentUser(c), req.OrderID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateDocumentResponse{
		Document:  dto.ToDocumentResponse(doc),
		PDFBase64: base64.StdEncoding.EncodeToString(pdf),
	})
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	filter := repository.DocumentFilter{Page: pageFromQuery(c)}
	if raw := c.Query("order_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "order_id must be numeric")
			return
		}
		filter.OrderID = &id
	}

	documents, pagination, err := h.facade.Documents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.DocumentListResponse{
		Documents:  make([]dto.DocumentResponse, 0, len(documents)),
		Pagination: pagination,
	}
	for i := range documents {
		resp.Documents = append(resp.Documents, dto.ToDocumentResponse(&documents[i]))
	}
	c.JSON(http.StatusOK, resp)
}
