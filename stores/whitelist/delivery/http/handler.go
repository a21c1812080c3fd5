package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/whitelist"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const defaultLimit = 100

type handler struct {
	whitelist whitelist.Usecase
}

func New(e *echo.Echo, whitelist whitelist.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{whitelist}

	g := e.Group("/whitelist")
	g.GET("", h.findAll)
	g.GET("/:token/:tokenId", h.isWhitelisted)
	g.POST("", h.add, authMiddleware.Auth(), authMiddleware.IsModerator())
	g.DELETE("/:token/:tokenId", h.remove, authMiddleware.Auth(), authMiddleware.IsModerator())
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Token  domain.Address `query:"token"`
		Offset int            `query:"offset" validate:"min=0"`
		Limit  int            `query:"limit" validate:"min=0,max=1000"`
	}

	p := &params{Limit: defaultLimit}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.whitelist.FindAll(ctx, p.Token, p.Offset, p.Limit); err != nil {
		ctx.WithField("err", err).Error("whitelist.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) isWhitelisted(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.Param("token"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	if !token.IsValid() || !tokenId.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if ok, err := h.whitelist.IsWhitelisted(ctx, token, tokenId); err != nil {
		ctx.WithField("err", err).Error("whitelist.IsWhitelisted failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"whitelisted": ok})
	}
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	signer := c.Get("address").(domain.Address)

	type payload struct {
		Token   domain.Address `json:"token" validate:"required,address"`
		TokenId domain.TokenId `json:"tokenId" validate:"required,amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.whitelist.Add(ctx, signer, p.Token, p.TokenId); err != nil {
		ctx.WithField("err", err).Error("whitelist.Add failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.Param("token"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	if !token.IsValid() || !tokenId.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.whitelist.Remove(ctx, token, tokenId); err != nil {
		ctx.WithField("err", err).Error("whitelist.Remove failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
