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
	mEvent "github.com/x-xyz/marketcore/domain/event/mocks"
	"github.com/x-xyz/marketcore/domain/listing"
	mListing "github.com/x-xyz/marketcore/domain/listing/mocks"
	"github.com/x-xyz/marketcore/domain/market"
	mDomain "github.com/x-xyz/marketcore/domain/mocks"
	mModerator "github.com/x-xyz/marketcore/domain/moderator/mocks"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const (
	operator = domain.Address("0x00000000000000000000000000000000000000aa")
	seller   = domain.Address("0x00000000000000000000000000000000000000bb")
	buyer    = domain.Address("0x00000000000000000000000000000000000000cc")
	token    = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
)

var mockCtx = ctx.Background()

type handlerSuite struct {
	suite.Suite

	e       *echo.Echo
	auth    *mDomain.AuthUsecase
	listing *mListing.Usecase
	event   *mEvent.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.listing = mListing.NewUsecase(s.T())
	s.event = mEvent.NewUsecase(s.T())

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", mockCtx)
			return next(c)
		}
	})
	New(s.e, &HandlerCfg{
		ListingUC: s.listing,
		EventUC:   s.event,
		Auth:      authMiddleware.New(s.auth, mModerator.NewUsecase(s.T()), operator),
		Decimals:  18,
	})
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

func (s *handlerSuite) login(bearer string, addr domain.Address) {
	s.auth.On("ParseToken", mockCtx, bearer).Return(addr, nil).Once()
}

func (s *handlerSuite) TestListFixedSale() {
	s.login("seller", seller)
	s.listing.On("ListFixedSale", mockCtx, seller, listing.FixedSaleParams{
		Token:      token,
		TokenId:    "7",
		Price:      big.NewInt(1000),
		Expiration: 1700000000,
		Quantity:   1,
	}).Return(uint64(3), nil).Once()

	body := `{"token":"` + string(token) + `","tokenId":"7","price":"1000","expiration":1700000000,"quantity":1}`
	rec := s.do(http.MethodPost, "/market/listings/fixed", body, "seller")
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"data":{"index":3},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestListFixedSaleRejectsBadPrice() {
	s.login("seller", seller)

	body := `{"token":"` + string(token) + `","tokenId":"7","price":"-5"}`
	rec := s.do(http.MethodPost, "/market/listings/fixed", body, "seller")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestListRequiresToken() {
	rec := s.do(http.MethodPost, "/market/listings/auction", `{}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestBuyFixedSaleMarketError() {
	s.login("buyer", buyer)
	s.listing.On("BuyFixedSale", mockCtx, buyer, uint64(3), uint64(2), big.NewInt(500)).
		Return(market.ErrInsufficientPayment).Once()

	rec := s.do(http.MethodPost, "/market/listings/3/buy", `{"quantity":2,"value":"500"}`, "buyer")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "InsufficientPayment")
}

func (s *handlerSuite) TestPlaceBid() {
	s.login("buyer", buyer)
	s.listing.On("PlaceBid", mockCtx, buyer, uint64(4), big.NewInt(2000)).Return(nil).Once()

	rec := s.do(http.MethodPost, "/market/listings/4/bids", `{"value":"2000"}`, "buyer")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestBadIndex() {
	s.login("buyer", buyer)
	rec := s.do(http.MethodPost, "/market/listings/0/end", "", "buyer")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestEndAuctionNotOperator() {
	s.login("buyer", buyer)
	s.listing.On("EndAuction", mockCtx, buyer, uint64(4)).Return(market.ErrNotOwnerOrOperator).Once()

	rec := s.do(http.MethodPost, "/market/listings/4/end", "", "buyer")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *handlerSuite) TestUnlist() {
	s.login("seller", seller)
	s.listing.On("UnlistAuctionSale", mockCtx, seller, uint64(4)).Return(nil).Once()
	rec := s.do(http.MethodDelete, "/market/listings/auction/4", "", "seller")
	s.Equal(http.StatusOK, rec.Code)

	s.login("seller", seller)
	s.listing.On("UnlistFixedSale", mockCtx, seller, uint64(3)).Return(market.ErrNotListedInFixedSale).Once()
	rec = s.do(http.MethodDelete, "/market/listings/fixed/3", "", "seller")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *handlerSuite) TestGetAuctionListing() {
	sl := &listing.SaleListing{
		Index:     4,
		Kind:      listing.KindAuctionSale,
		Token:     token,
		TokenId:   "7",
		Standard:  domain.TokenType721,
		Owner:     seller,
		Price:     big.NewInt(1500000000000000000),
		StartTime: 100,
		EndTime:   200,
		Quantity:  1,
	}
	s.listing.On("SaleListing", mockCtx, uint64(4)).Return(sl, nil).Once()
	s.listing.On("HighestBid", mockCtx, uint64(4)).Return(&listing.HighestBid{
		Index:  4,
		Bidder: buyer,
		Amount: big.NewInt(2000000000000000000),
	}, nil).Once()

	rec := s.do(http.MethodGet, "/market/listings/4", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{
		"listing":{"index":4,"kind":"AUCTION_SALE","token":"`+string(token)+`","tokenId":"7","standard":721,
			"owner":"`+string(seller)+`","price":"1500000000000000000","priceDisplay":"1.5",
			"startTime":100,"endTime":200,"quantity":1},
		"fixedListed":false,"auctionListed":true,"hasBids":true,
		"highestBid":{"bidder":"`+string(buyer)+`","amount":"2000000000000000000","amountDisplay":"2"}
	},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetMissingListing() {
	s.listing.On("SaleListing", mockCtx, uint64(9)).Return(listing.Empty(), nil).Once()

	rec := s.do(http.MethodGet, "/market/listings/9", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"kind":"NONE"`)
	s.NotContains(rec.Body.String(), "highestBid")
}

func (s *handlerSuite) TestGetAuctions() {
	s.listing.On("CountAuctionSaleListings", mockCtx).Return(3, nil).Once()
	s.listing.On("ListAuctionSaleListings", mockCtx, 1, 2).Return([]uint64{5, 6}, nil).Once()

	rec := s.do(http.MethodGet, "/market/auctions?offset=1&count=2", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"total":3,"indices":[5,6]},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetFixedSales() {
	s.listing.On("CountFixedSaleListings", mockCtx).Return(2, nil).Once()
	s.listing.On("ListFixedSaleListings", mockCtx, 0, defaultLimit).Return([]uint64{1, 3}, nil).Once()

	rec := s.do(http.MethodGet, "/market/fixed", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"total":2,"indices":[1,3]},"status":"success"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/market/fixed?count=1001", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestPruneAsset() {
	s.login("op", operator)
	s.listing.On("PruneAsset", mockCtx, token, domain.TokenId("7")).Return(nil).Once()
	rec := s.do(http.MethodPost, "/market/assets/"+string(token)+"/7/prune", "", "op")
	s.Equal(http.StatusOK, rec.Code)

	s.login("seller", seller)
	rec = s.do(http.MethodPost, "/market/assets/"+string(token)+"/7/prune", "", "seller")
	s.Equal(http.StatusForbidden, rec.Code)

	s.login("op", operator)
	rec = s.do(http.MethodPost, "/market/assets/nope/7/prune", "", "op")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestPruneDelisted() {
	s.login("op", operator)
	s.listing.On("PruneDelisted", mockCtx).Return(2, nil).Once()
	rec := s.do(http.MethodPost, "/market/prune", "", "op")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"pruned":2},"status":"success"}`, rec.Body.String())

	s.login("buyer", buyer)
	rec = s.do(http.MethodPost, "/market/prune", "", "buyer")
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *handlerSuite) TestGetAsset() {
	s.listing.On("AssetListing", mockCtx, token, domain.TokenId("7")).Return(uint64(0), nil).Once()
	s.listing.On("SaleListingOwners", mockCtx, token, domain.TokenId("7")).Return([]domain.Address{seller}, nil).Once()

	rec := s.do(http.MethodGet, "/market/assets/"+string(token)+"/7", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"erc721Listing":0,"erc1155Owners":["`+string(seller)+`"]},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetOwnerSlice() {
	s.listing.On("OwnerSlice", mockCtx, token, domain.TokenId("7"), seller).
		Return(&listing.OwnerSlice{TotalQuantity: 5, Indices: []uint64{1, 2}}, nil).Once()

	rec := s.do(http.MethodGet, "/market/assets/"+string(token)+"/7/owners/"+string(seller), "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"totalQuantity":5,"indices":[1,2]},"status":"success"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/market/assets/"+string(token)+"/7/owners/nobody", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetEvents() {
	s.event.On("FindByListing", mockCtx, uint64(4), 0, defaultLimit).Return(nil, nil).Once()

	rec := s.do(http.MethodGet, "/market/listings/4/events", "", "")
	s.Equal(http.StatusOK, rec.Code)
}
