package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	custody custody.Usecase
}

// New registers the devnet token endpoints. Deploying and minting are
// reserved to the operator.
func New(e *echo.Echo, custody custody.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{custody}

	g := e.Group("/devnet/collections")
	g.GET("", h.collections)
	g.POST("", h.deploy, authMiddleware.Auth(), authMiddleware.IsOperator())
	g.POST("/:token/mint", h.mint, authMiddleware.Auth(), authMiddleware.IsOperator())
	g.PUT("/:token/approvals", h.setApprovalForAll, authMiddleware.Auth())
	g.GET("/:token/:tokenId/owners/:owner", h.balanceOf)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, custody.ErrUnknownToken):
		return http.StatusNotFound
	case errors.Is(err, custody.ErrTokenExists):
		return http.StatusConflict
	case errors.Is(err, custody.ErrInvalidQuantity):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *handler) collections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.custody.Collections(ctx); err != nil {
		ctx.WithField("err", err).Error("custody.Collections failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) deploy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address         domain.Address   `json:"address" validate:"required,address"`
		Standard        domain.TokenType `json:"standard" validate:"oneof=721 1155"`
		RoyaltyReceiver domain.Address   `json:"royaltyReceiver" validate:"omitempty,address"`
		RoyaltyPercent  uint64           `json:"royaltyPercent" validate:"max=100"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.custody.Deploy(ctx, custody.Collection(*p)); err != nil {
		ctx.WithField("err", err).Warn("custody.Deploy failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		To       domain.Address `json:"to" validate:"required,address"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required,amount"`
		Quantity uint64         `json:"quantity" validate:"min=1"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token := domain.Address(c.Param("token"))
	if err := h.custody.Mint(ctx, token, p.To, p.TokenId, p.Quantity); err != nil {
		ctx.WithField("err", err).Warn("custody.Mint failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type payload struct {
		Operator domain.Address `json:"operator" validate:"required,address"`
		Approved bool           `json:"approved"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token := domain.Address(c.Param("token"))
	if err := h.custody.SetApprovalForAll(ctx, token, owner, p.Operator, p.Approved); err != nil {
		ctx.WithField("err", err).Warn("custody.SetApprovalForAll failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.Param("token"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	owner := domain.Address(c.Param("owner"))
	if !owner.IsValid() || !tokenId.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	cu, err := h.custody.Custodian(ctx, token)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	balance, err := cu.BalanceOf(ctx, owner.ToLower(), tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("custodian.BalanceOf failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]uint64{"balance": balance})
}
