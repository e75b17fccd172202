package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/events"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: err.Error(),
	})
}

func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("event publish error: %v", err)
	}
}
