package handler

import (
	"net/http"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/metrics"
	"gamerental/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ Orders ============

func (h *APIHandler) GetOrders(c *gin.Context) {
	orders, err := h.Repository.GetAllOrders(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(orders, dto.NewOrderResponse))
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Repository.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// CreateOrder rents licenses to a client
// @Summary Create order
// @Description Reserves every license and links it to the new order in one transaction.
// @Description A license that is not available aborts the whole order.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrderRequest true "order"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.Repository.CreateOrder(c.Request.Context(), repository.NewOrder{
		ClientID:   req.ClientID,
		Value:      req.Value,
		LicenseIDs: req.LicenseIDs,
	})
	if err != nil {
		if _, typed := apperr.From(err); typed {
			metrics.RecordOrder("warning", 0)
		} else {
			metrics.RecordOrder("error", 0)
		}
		errorResponse(c, err)
		return
	}

	metrics.RecordOrder("success", len(order.Lines))
	successResponse(c, http.StatusCreated, "order created", order.ID)
}

// UpdateOrder changes value or status; cancelling frees the order's licenses.
func (h *APIHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.Repository.UpdateOrder(c.Request.Context(), id, repository.OrderChanges{
		Value:  req.Value,
		Status: req.Status,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "order updated", id)
}

func (h *APIHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteOrder(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "order deleted", id)
}
