package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
	mDomain "github.com/x-xyz/marketcore/domain/mocks"
	mModerator "github.com/x-xyz/marketcore/domain/moderator/mocks"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
	custodyUsecase "github.com/x-xyz/marketcore/stores/custody/usecase"
)

const (
	operator = domain.Address("0x00000000000000000000000000000000000000aa")
	user     = domain.Address("0x00000000000000000000000000000000000000bb")
	market   = domain.Address("0x00000000000000000000000000000000000000dd")
	token    = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
)

var mockCtx = ctx.Background()

type handlerSuite struct {
	suite.Suite

	e       *echo.Echo
	auth    *mDomain.AuthUsecase
	custody custody.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.custody = custodyUsecase.New()

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
	New(s.e, s.custody, authMiddleware.New(s.auth, mModerator.NewUsecase(s.T()), operator))
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

func (s *handlerSuite) TestDeployAndMint() {
	deploy := `{"address":"` + string(token) + `","standard":1155,"royaltyReceiver":"` + string(user) + `","royaltyPercent":5}`
	rec := s.do(http.MethodPost, "/devnet/collections", deploy, "op")
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/devnet/collections", deploy, "op")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/devnet/collections", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[{"address":"`+string(token)+`","standard":1155,"royaltyReceiver":"`+string(user)+`","royaltyPercent":5}],"status":"success"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/devnet/collections/"+string(token)+"/mint", `{"to":"`+string(user)+`","tokenId":"7","quantity":4}`, "op")
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/devnet/collections/"+string(token)+"/7/owners/"+string(user), "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"balance":4},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestDeployRequiresOperator() {
	rec := s.do(http.MethodPost, "/devnet/collections", `{"address":"`+string(token)+`","standard":721}`, "user")
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/devnet/collections", `{"address":"`+string(token)+`","standard":20}`, "op")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestMintUnknownToken() {
	rec := s.do(http.MethodPost, "/devnet/collections/"+string(token)+"/mint", `{"to":"`+string(user)+`","tokenId":"7","quantity":1}`, "op")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestSetApprovalForAll() {
	s.Require().NoError(s.custody.Deploy(mockCtx, custody.Collection{Address: token, Standard: domain.TokenType721}))

	rec := s.do(http.MethodPut, "/devnet/collections/"+string(token)+"/approvals", `{"operator":"`+string(market)+`","approved":true}`, "user")
	s.Equal(http.StatusOK, rec.Code)

	cu, err := s.custody.Custodian(mockCtx, token)
	s.Require().NoError(err)
	ok, err := cu.IsApprovedForAll(mockCtx, user, market)
	s.NoError(err)
	s.True(ok)
}
