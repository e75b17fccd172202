package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/catalog"
	"github.com/dshu-atelier/storefront/internal/ui"
)

type ModalHandler struct {
	Modal   *ui.ModalState
	Catalog *catalog.Catalog
}

func (h *ModalHandler) Get(c echo.Context) error {
	overlay, productID := h.Modal.Active()
	resp := echo.Map{"overlay": overlay}
	if productID != "" {
		resp["product_id"] = productID
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ModalHandler) OpenAuth(c echo.Context) error {
	h.Modal.OpenAuth()
	return h.Get(c)
}

func (h *ModalHandler) OpenCheckout(c echo.Context) error {
	h.Modal.OpenCheckout()
	return h.Get(c)
}

func (h *ModalHandler) OpenProduct(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.Catalog.ByID(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Modal.OpenProduct(id)
	return h.Get(c)
}

func (h *ModalHandler) Close(c echo.Context) error {
	h.Modal.Close()
	return h.Get(c)
}
