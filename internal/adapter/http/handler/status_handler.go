package handler

import (
	"fare-terminal/internal/adapter/http/dto"
	"fare-terminal/internal/core/ports"
	"fare-terminal/pkg/apperror"
	"fare-terminal/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultTransactionLimit = 20

// StatusHandler serves the read-only terminal endpoints.
type StatusHandler struct {
	statusSvc ports.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusSvc ports.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// GetStatus handles GET /api/v1/status.
// A degraded terminal answers 503 with the same body.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	status := h.statusSvc.Status(c.Request.Context())
	if status.Degraded {
		response.Unavailable(c, dto.NewStatusResponse(status))
		return
	}
	response.OK(c, dto.NewStatusResponse(status))
}

// GetCounters handles GET /api/v1/counters.
func (h *StatusHandler) GetCounters(c *gin.Context) {
	snap, err := h.statusSvc.Counters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCountersResponse(snap))
}

// GetIssuerCounters handles GET /api/v1/counters/:issuer.
func (h *StatusHandler) GetIssuerCounters(c *gin.Context) {
	var uri dto.IssuerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid issuer"))
		return
	}

	snap, err := h.statusSvc.Counters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	counters, ok := snap.Issuers[uri.Issuer]
	if !ok {
		response.Error(c, apperror.ErrNotFound("Issuer"))
		return
	}
	response.OK(c, dto.NewIssuerCountersResponse(counters))
}

// ListTransactions handles GET /api/v1/transactions.
func (h *StatusHandler) ListTransactions(c *gin.Context) {
	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("limit must be between 1 and 100"))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultTransactionLimit
	}

	records, err := h.statusSvc.RecentTransactions(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.NewTransactionResponse(r))
	}
	response.OK(c, dto.TransactionListResponse{Transactions: items, Count: len(items)})
}
