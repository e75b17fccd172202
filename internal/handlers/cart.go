package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/catalog"
	"github.com/dshu-atelier/storefront/internal/events"
	"github.com/dshu-atelier/storefront/internal/models"
	"github.com/dshu-atelier/storefront/internal/service/cart"
)

type CartHandler struct {
	Cart     *cart.Service
	Catalog  *catalog.Catalog
	Producer *events.Producer
}

type cartView struct {
	Items     []models.CartItem `json:"items"`
	Total     int               `json:"total"`
	ItemCount int               `json:"item_count"`
	IsOpen    bool              `json:"is_open"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:     h.Cart.Items(),
		Total:     h.Cart.Total(),
		ItemCount: h.Cart.ItemCount(),
		IsOpen:    h.Cart.IsOpen(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		ProductID    string `json:"product_id"`
		Quantity     int    `json:"quantity"`
		SelectedSize string `json:"selected_size"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Catalog.ByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.Cart.AddItem(c.Request().Context(), product, req.Quantity, req.SelectedSize); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, req.ProductID, map[string]any{
		"type":          "cart_item_added",
		"product_id":    req.ProductID,
		"quantity":      req.Quantity,
		"selected_size": req.SelectedSize,
	})
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Cart.RemoveItem(c.Request().Context(), productID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, productID, map[string]any{
		"type":       "cart_item_removed",
		"product_id": productID,
	})
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Cart.UpdateQuantity(c.Request().Context(), productID, req.Quantity); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, productID, map[string]any{
		"type":       "cart_quantity_set",
		"product_id": productID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) ToggleCart(c echo.Context) error {
	open := h.Cart.Toggle()
	return c.JSON(http.StatusOK, echo.Map{"is_open": open})
}
