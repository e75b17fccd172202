package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/events"
	"github.com/dshu-atelier/storefront/internal/service/auth"
	"github.com/dshu-atelier/storefront/internal/service/cart"
)

type AuthHandler struct {
	Auth     *auth.Service
	Cart     *cart.Service
	Producer *events.Producer
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, auth.ErrBusy):
			return echo.NewHTTPError(http.StatusConflict, "login already in progress")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	publish(c, h.Producer, events.TopicUserEvents, user.ID, map[string]any{
		"type":  "user_logged_in",
		"email": user.Email,
	})
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user, err := h.Auth.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrBusy) {
			return echo.NewHTTPError(http.StatusConflict, "registration already in progress")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicUserEvents, user.ID, map[string]any{
		"type":  "user_registered",
		"email": user.Email,
	})
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	user, _ := h.Auth.Current()

	if err := h.Auth.Logout(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// the session is gone, so the live cart empties with it
	if err := h.Cart.Clear(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicUserEvents, user.ID, map[string]any{
		"type": "user_logged_out",
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHandler) Session(c echo.Context) error {
	user, ok := h.Auth.Current()
	return c.JSON(http.StatusOK, echo.Map{
		"user":          user,
		"authenticated": ok,
		"loading":       h.Auth.Loading(),
	})
}
