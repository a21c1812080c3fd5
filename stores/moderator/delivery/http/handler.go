package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/moderator"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	moderator moderator.Usecase
}

// New mounts the moderator roster, which only the market operator manages
func New(e *echo.Echo, moderator moderator.Usecase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{moderator}

	g := e.Group("/moderators", auth.Auth(), auth.IsOperator())
	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:address", h.remove, middleware.IsValidAddress("address"))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.moderator.FindAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Name    string         `json:"name" validate:"max=64"`
		Address domain.Address `json:"address" validate:"required,address"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.moderator.Add(ctx, p.Address, p.Name); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.moderator.Remove(ctx, domain.Address(c.Param("address"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
