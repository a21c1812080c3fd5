package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/settlement"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	settlement settlement.Usecase
}

// New registers the market parameters endpoints. Only the operator may
// change them, the usecase rejects anyone else.
func New(e *echo.Echo, settlement settlement.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{settlement}

	g := e.Group("/market/config")
	g.GET("", h.get)
	g.PUT("/fixedComPercent", h.setPercent(settlement.SetFixedComPercent), authMiddleware.Auth())
	g.PUT("/auctionComPercent", h.setPercent(settlement.SetAuctionComPercent), authMiddleware.Auth())
	g.PUT("/minBidIncrementPercent", h.setPercent(settlement.SetMinBidIncrementPercent), authMiddleware.Auth())
	g.PUT("/commissionAddress", h.setCommissionAddress, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.settlement.Config(ctx))
}

type percentSetter func(c ctx.Ctx, caller domain.Address, percent uint64) error

func (h *handler) setPercent(set percentSetter) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Get("ctx").(ctx.Ctx)
		caller := c.Get("address").(domain.Address)

		type payload struct {
			Percent *uint64 `json:"percent" validate:"required"`
		}

		p := &payload{}
		if err := c.Bind(p); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		} else if err := c.Validate(p); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}

		if err := set(ctx, caller, *p.Percent); err != nil {
			ctx.WithField("err", err).Warn("settlement setter failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		return delivery.MakeJsonResp(c, http.StatusOK, h.settlement.Config(ctx))
	}
}

func (h *handler) setCommissionAddress(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Address domain.Address `json:"address" validate:"required,address"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settlement.SetCommissionAddress(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Warn("settlement.SetCommissionAddress failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.settlement.Config(ctx))
}
