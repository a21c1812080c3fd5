package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	mDomain "github.com/x-xyz/marketcore/domain/mocks"
)

const signer = "0x939ae6a4c8dfdbb1f7085189574f0a938013952a"

func newServer(t *testing.T) (*echo.Echo, *mDomain.AuthUsecase) {
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	auth := mDomain.NewAuthUsecase(t)
	New(e, auth, "nonce: %s")
	return e, auth
}

func TestLogin(t *testing.T) {
	req := require.New(t)
	e, auth := newServer(t)

	auth.On("Login", ctx.Background(), domain.Address(signer), "0xsig").Return("token", nil).Once()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"address":"`+signer+`","signature":"0xsig"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	req.Equal(http.StatusCreated, rec.Code)
	req.JSONEq(`{"data":"token","status":"success"}`, rec.Body.String())

	auth.On("Login", ctx.Background(), domain.Address(signer), "0xbad").Return("", domain.ErrInvalidSignature).Once()
	r = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"address":"`+signer+`","signature":"0xbad"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	req.Equal(http.StatusForbidden, rec.Code)

	r = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"address":"0x12","signature":"0xsig"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestNonce(t *testing.T) {
	e, auth := newServer(t)

	auth.On("Nonce", ctx.Background(), domain.Address(signer)).Return("n-1", nil).Once()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/nonce/"+signer, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":"n-1","status":"success"}`, rec.Body.String())
}
