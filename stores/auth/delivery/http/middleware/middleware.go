package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/moderator"
)

type AuthMiddleware struct {
	auth      domain.AuthUsecase
	moderator moderator.Usecase
	operator  domain.Address
}

func New(auth domain.AuthUsecase, moderator moderator.Usecase, operator domain.Address) *AuthMiddleware {
	return &AuthMiddleware{
		auth:      auth,
		moderator: moderator,
		operator:  operator.ToLower(),
	}
}

// Auth requires a bearer token and sets "address" to its holder
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) IsOperator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			address := c.Get("address").(domain.Address)

			if address.Equals(m.operator) {
				return next(c)
			}

			return delivery.MakeJsonResp(c, http.StatusForbidden, "require operator privilege")
		}
	}
}

// IsModerator lets the operator and every moderator through
func (m *AuthMiddleware) IsModerator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			address := c.Get("address").(domain.Address)

			// skip operator
			if address.Equals(m.operator) {
				return next(c)
			}

			if res, err := m.moderator.IsModerator(ctx, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !res {
				return delivery.MakeJsonResp(c, http.StatusForbidden, "require moderator privilege")
			} else {
				return next(c)
			}
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("address", ads.ToLower())
		return true, nil
	}
}
