package handlers

import (
	"context"
	"errors"
	"net/http"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple(pkg.CodeInvalidInput, "Invalid service order payload", http.StatusBadRequest)
	errLookupNotFound      = pkg.NewDomainErrorSimple(pkg.CodeResourceNotFound, "Service order not found", http.StatusNotFound)
)

// ServiceOrderHandler handles the staff-facing order lifecycle plus the
// public lookup surface.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), actorFromRequest(c), payload.ResolveVehicleID())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) StartDiagnosis(c *gin.Context) {
	h.patchOrder(c, h.usecase.StartDiagnosis)
}

func (h *ServiceOrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddService(c.Request.Context(), actorFromRequest(c), c.Param("id"), payload.ServiceID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) RemoveService(c *gin.Context) {
	o, err := h.usecase.RemoveService(c.Request.Context(), actorFromRequest(c), c.Param("id"), c.Param("serviceId"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddItem(c.Request.Context(), actorFromRequest(c), c.Param("id"), payload.StockItemID, payload.Quantity)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) RemoveItem(c *gin.Context) {
	o, err := h.usecase.RemoveItem(c.Request.Context(), actorFromRequest(c), c.Param("id"), c.Param("itemId"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) GenerateBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.GenerateBudget)
}

func (h *ServiceOrderHandler) ApproveBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.ApproveBudget)
}

func (h *ServiceOrderHandler) DisapproveBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.DisapproveBudget)
}

func (h *ServiceOrderHandler) FinalizeExecution(c *gin.Context) {
	h.patchOrder(c, h.usecase.FinalizeExecution)
}

func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.patchOrder(c, h.usecase.Deliver)
}

func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	h.patchOrder(c, h.usecase.Cancel)
}

func (h *ServiceOrderHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SetStatus(c.Request.Context(), actorFromRequest(c), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// PublicLookup is the anti-enumeration surface: code plus owner document, a
// single uniform not-found for every failure cause.
func (h *ServiceOrderHandler) PublicLookup(c *gin.Context) {
	o, err := h.usecase.PublicLookup(c.Request.Context(), c.Query("code"), c.Query("document"))
	if err != nil {
		c.JSON(errLookupNotFound.HTTPStatus, errLookupNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderPublic(o))
}

func (h *ServiceOrderHandler) patchOrder(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error),
) {
	o, err := op(c.Request.Context(), actorFromRequest(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func mapOrderError(err error) *pkg.AppError {
	var (
		transitionErr *entities.TransitionError
		stockErr      *usecase.InsufficientStockError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidStockItem),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewInvalidInput("Invalid request")
	case errors.Is(err, usecase.ErrNotAllowed):
		return pkg.NewNotAllowed("Actor is not allowed to perform this operation")
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewResourceNotFound("Service order not found")
	case errors.Is(err, entities.ErrLineItemNotFound):
		return pkg.NewResourceNotFound("Line item not found on this order")
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewReferenceNotFound("Vehicle not found")
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewReferenceNotFound("Catalog service not found")
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewReferenceNotFound("Stock item not found")
	case errors.Is(err, entities.ErrBudgetAlreadyGenerated):
		return pkg.NewConflict("Budget already generated for this order")
	case errors.Is(err, usecase.ErrCodeAllocation):
		return pkg.NewConflict("Could not allocate a unique order code")
	case errors.As(err, &stockErr):
		return pkg.NewDomainRuleBroken(stockErr.Error())
	case errors.As(err, &transitionErr):
		return pkg.NewDomainRuleBroken(transitionErr.Error())
	case errors.Is(err, entities.ErrOrderNotEditable),
		errors.Is(err, entities.ErrBudgetMissing),
		errors.Is(err, entities.ErrDeliverBeforeFinalize),
		errors.Is(err, entities.ErrHistoryRewrite):
		return pkg.NewDomainRuleBroken(err.Error())
	default:
		return pkg.LogAndClassify("order", err)
	}
}
