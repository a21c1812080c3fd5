package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/vault"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	vault    vault.Usecase
	decimals int32
}

// New registers the devnet balance endpoints. Only the operator can
// deposit, anyone can withdraw their own balance.
func New(e *echo.Echo, vault vault.Usecase, authMiddleware *authMiddleware.AuthMiddleware, decimals int32) {
	h := &handler{vault: vault, decimals: decimals}

	g := e.Group("/devnet/balances")
	g.GET("/:address", h.balanceOf)
	g.POST("/deposit", h.deposit, authMiddleware.Auth(), authMiddleware.IsOperator())
	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, vault.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, vault.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))
	if !address.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	balance, err := h.vault.BalanceOf(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("vault.BalanceOf failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"balance":        balance.String(),
		"balanceDisplay": listing.FormatAmount(balance, h.decimals),
	})
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		To     domain.Address `json:"to" validate:"required,address"`
		Amount string         `json:"amount" validate:"required,amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.vault.Deposit(ctx, p.To, amount); err != nil {
		ctx.WithField("err", err).Warn("vault.Deposit failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Amount string `json:"amount" validate:"required,amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	} else if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.vault.Withdraw(ctx, caller, amount); err != nil {
		ctx.WithField("err", err).Warn("vault.Withdraw failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
