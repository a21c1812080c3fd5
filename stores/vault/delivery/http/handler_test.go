package http

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	mDomain "github.com/x-xyz/marketcore/domain/mocks"
	mModerator "github.com/x-xyz/marketcore/domain/moderator/mocks"
	"github.com/x-xyz/marketcore/domain/vault"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
	vaultUsecase "github.com/x-xyz/marketcore/stores/vault/usecase"
)

const (
	operator = domain.Address("0x00000000000000000000000000000000000000aa")
	user     = domain.Address("0x00000000000000000000000000000000000000bb")
)

var mockCtx = ctx.Background()

type handlerSuite struct {
	suite.Suite

	e     *echo.Echo
	auth  *mDomain.AuthUsecase
	vault vault.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.vault = vaultUsecase.New()

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", mockCtx)
			return next(c)
		}
	})
	s.auth.On("ParseToken", mockCtx, "op").Return(operator, nil).Maybe()
	s.auth.On("ParseToken", mockCtx, "user").Return(user, nil).Maybe()
	New(s.e, s.vault, authMiddleware.New(s.auth, mModerator.NewUsecase(s.T()), operator), 18)
}

func (s *handlerSuite) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestDepositAndWithdraw() {
	rec := s.do(http.MethodPost, "/devnet/balances/deposit", `{"to":"`+string(user)+`","amount":"2500000000000000000"}`, "op")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/devnet/balances/withdraw", `{"amount":"500000000000000000"}`, "user")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/devnet/balances/"+string(user), "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"balance":"2000000000000000000","balanceDisplay":"2"},"status":"success"}`, rec.Body.String())

	balance, err := s.vault.BalanceOf(mockCtx, user)
	s.NoError(err)
	s.Equal(0, balance.Cmp(big.NewInt(2000000000000000000)))
}

func (s *handlerSuite) TestDepositRequiresOperator() {
	rec := s.do(http.MethodPost, "/devnet/balances/deposit", `{"to":"`+string(user)+`","amount":"1"}`, "user")
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *handlerSuite) TestWithdrawErrors() {
	rec := s.do(http.MethodPost, "/devnet/balances/withdraw", `{"amount":"1"}`, "user")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPost, "/devnet/balances/withdraw", `{"amount":"0"}`, "user")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/devnet/balances/withdraw", `{"amount":"abc"}`, "user")
	s.Equal(http.StatusBadRequest, rec.Code)
}
