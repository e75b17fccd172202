package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/events"
	"github.com/dshu-atelier/storefront/internal/service/checkout"
)

type CheckoutHandler struct {
	Checkout *checkout.Service
	Producer *events.Producer
}

func (h *CheckoutHandler) Submit(c echo.Context) error {
	var req checkout.Request
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	conf, err := h.Checkout.Submit(c.Request().Context(), req)
	if err != nil {
		var fields checkout.ValidationErrors
		switch {
		case errors.As(err, &fields):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"status": "error",
				"fields": fields,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusBadRequest, "no items in cart")
		case errors.Is(err, checkout.ErrBusy):
			return echo.NewHTTPError(http.StatusConflict, "checkout already in progress")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	publish(c, h.Producer, events.TopicOrderEvents, conf.OrderID, map[string]any{
		"type":     "order_submitted",
		"order_id": conf.OrderID,
		"total":    conf.Total,
	})
	return c.JSON(http.StatusOK, conf)
}

func (h *CheckoutHandler) Status(c echo.Context) error {
	conf, submitted := h.Checkout.Submitted()
	return c.JSON(http.StatusOK, echo.Map{
		"submitted":    submitted,
		"confirmation": conf,
		"loading":      h.Checkout.Loading(),
	})
}

func (h *CheckoutHandler) Reset(c echo.Context) error {
	h.Checkout.Reset()
	return c.NoContent(http.StatusNoContent)
}
