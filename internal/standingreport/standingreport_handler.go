package standingreport

import (
	"net/http"

	"go-writeup/internal/shared/apperror"
	"go-writeup/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("standing.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("standing.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("standing request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// EmployeeReport: GET /employees/:id/standing?quarter=2025%20Q1
func (h *Handler) EmployeeReport(c *gin.Context) {
	resp, err := h.service.ComputeStandingReport(c.Request.Context(), c.Param("id"), c.Query("quarter"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByStanding(c *gin.Context) {
	resp, err := h.service.ListByStanding(c.Request.Context(), c.Query("quarter"), c.Query("tier"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListQuarters(c *gin.Context) {
	resp, err := h.service.ListQuarters(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Tiers(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Tiers(), nil)
}
