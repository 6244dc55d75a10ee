package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manualrag/src/core/manualqa"
)

type Handler struct {
	queryService manualqa.QueryService
	sysService   manualqa.SystemService
}

func NewHandler(queryService manualqa.QueryService, sysService manualqa.SystemService) *Handler {
	return &Handler{
		queryService: queryService,
		sysService:   sysService,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.CheckHealth)

	r.POST("/query", h.Query)
	r.POST("/search", h.Search)
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, status int, err error) {
	var code string
	switch {
	case errors.Is(err, manualqa.ErrInvalidQuery):
		code = "INVALID_REQUEST"
		status = http.StatusBadRequest
	case status == http.StatusBadRequest:
		code = "INVALID_REQUEST"
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	_ = c.Error(err)
	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
