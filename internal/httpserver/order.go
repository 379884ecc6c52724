package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopapi/internal/logging"
	"shopapi/internal/service"
	"shopapi/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	items, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("list_orders_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, items)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		l.Warn("create_order_failed", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	l.Info("create_order_success", "id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_order_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateOrder(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_order_failed", "status", 404, "id", id)
			return errorJSON(c, http.StatusNotFound, "order not found")
		}
		l.Warn("update_order_failed", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	l.Info("update_order_success", "id", id)
	return c.JSON(http.StatusOK, order)
}
