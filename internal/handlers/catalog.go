package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/catalog"
	"github.com/dshu-atelier/storefront/internal/models"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, h.Catalog.ByCategory(models.ProductCategory(category)))
	}
	return c.JSON(http.StatusOK, h.Catalog.Products())
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.Catalog.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Categories())
}
