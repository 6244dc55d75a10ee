package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manualrag/src/core/formatter"
)

// A missing or null query fails binding; an explicit empty string is accepted.
type queryRequest struct {
	Query *string `json:"query" binding:"required"`
}

// Query godoc
// @Summary Find manual figures that answer a question
// @Tags query
// @Accept json
// @Produce json
// @Param body body queryRequest true "Question"
// @Success 200 {object} formatter.CandidateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /query [post]
func (h *Handler) Query(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.queryService.Answer(c.Request.Context(), *req.Query)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, formatter.Candidates(result))
}

// Search godoc
// @Summary Search the parsed figures and tables of the manual
// @Tags query
// @Accept json
// @Produce json
// @Param body body queryRequest true "Search terms"
// @Success 200 {object} formatter.IndexResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [post]
func (h *Handler) Search(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.queryService.Search(c.Request.Context(), *req.Query)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, formatter.Index(result))
}
