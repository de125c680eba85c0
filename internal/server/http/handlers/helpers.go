package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user payload from context.
func CurrentUser(c *gin.Context) model.UserPayload {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return model.UserPayload{}
	}
	payload, _ := val.(*model.UserPayload)
	if payload == nil {
		return model.UserPayload{}
	}
	return *payload
}

// pageFromQuery reads page and limit query parameters. Non-numeric or
// out-of-range values fall back to the defaults.
func pageFromQuery(c *gin.Context) model.PageRequest {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = model.DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = model.DefaultLimit
	}
	return model.PageRequest{Page: page, Limit: limit}.Normalize()
}

// respondError maps a domain error to its HTTP status with a JSON body.
// Unrecognized errors never leak details to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrInvalidOrderItems),
		errors.Is(err, domainErrors.ErrInvalidDocumentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
