package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
)

// OrderQueryHandler serves the operational read views: the ranked active
// queue and the delivery-time metrics.
type OrderQueryHandler struct {
	usecase usecase.IOrderQueryUseCase
}

func NewOrderQueryHandler(uc usecase.IOrderQueryUseCase) *OrderQueryHandler {
	return &OrderQueryHandler{usecase: uc}
}

func (h *OrderQueryHandler) ActiveQueue(c *gin.Context) {
	queue, err := h.usecase.ActiveQueue(c.Request.Context())
	if err != nil {
		appErr := pkg.LogAndClassify("queue", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(queue))
}

func (h *OrderQueryHandler) TimeMetrics(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		appErr := pkg.NewInvalidInput("Invalid days parameter")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.TimeMetrics(c.Request.Context(), days)
	if err != nil {
		appErr := mapMetricsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}

func mapMetricsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMetricsWindow):
		return pkg.NewInvalidInput("Metrics window must be between 1 and 365 days")
	case errors.Is(err, usecase.ErrNoDeliveredOrders):
		return pkg.NewDomainRuleBroken("No delivered orders in the requested window")
	default:
		return pkg.LogAndClassify("metrics", err)
	}
}
