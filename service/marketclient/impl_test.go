package marketclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/ethereum"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/market"
)

const (
	nonce    = "3b0c7f0e-2f4e-4f55-9a57-8a0f5e3c1d11"
	template = "Sign in to the market, nonce: %s"
	token    = "access-token"
)

type clientSuite struct {
	suite.Suite

	srv    *httptest.Server
	client Client
	signer string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func writeJson(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s := "success"
	if status >= 400 {
		s = "fail"
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data, "status": s})
}

func (s *clientSuite) SetupTest() {
	key, pub, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	s.signer = ethereum.AddressOf(pub)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/nonce/"+s.signer, func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, nonce)
	})
	mux.HandleFunc("/auth/signingMsgTemplate", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, map[string]string{"template": template})
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		p := struct {
			Address   string `json:"address"`
			Signature string `json:"signature"`
		}{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&p))
		ok, err := ethereum.ValidateMsgSignature([]byte(fmt.Sprintf(template, nonce)), p.Signature, p.Address)
		if err != nil || !ok {
			writeJson(w, http.StatusForbidden, "Invalid signature")
			return
		}
		writeJson(w, http.StatusCreated, token)
	})
	mux.HandleFunc("/market/auctions", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("2", r.URL.Query().Get("offset"))
		s.Equal("10", r.URL.Query().Get("count"))
		writeJson(w, http.StatusOK, map[string]interface{}{"total": 3, "indices": []uint64{7}})
	})
	mux.HandleFunc("/market/fixed", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("0", r.URL.Query().Get("offset"))
		s.Equal("50", r.URL.Query().Get("count"))
		writeJson(w, http.StatusOK, map[string]interface{}{"total": 2, "indices": []uint64{9, 11}})
	})
	mux.HandleFunc("/market/listings/fixed/9", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJson(w, http.StatusOK, nil)
	})
	mux.HandleFunc("/market/listings/fixed/11", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusUnprocessableEntity, map[string]string{"code": "NotListedInFixedSale", "reason": "not listed in fixed sale"})
	})
	mux.HandleFunc("/market/listings/7", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, map[string]interface{}{
			"listing":       &listing.ListingView{Index: 7, Kind: listing.KindAuctionSale, EndTime: 200},
			"auctionListed": true,
			"hasBids":       true,
			"highestBid":    &listing.BidView{Amount: "5"},
		})
	})
	mux.HandleFunc("/market/listings/7/end", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJson(w, http.StatusUnprocessableEntity, map[string]string{"code": "AuctionInProgress", "reason": "auction has not reached its end time"})
	})
	mux.HandleFunc("/market/listings/8/end", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusInternalServerError, "boom")
	})
	s.srv = httptest.NewServer(mux)

	s.client = NewClient(&ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    s.srv.URL,
		Key:        key,
	})
}

func (s *clientSuite) TearDownTest() {
	s.srv.Close()
}

func (s *clientSuite) TestLoginAndEndAuction() {
	c := ctx.Background()

	s.ErrorIs(s.client.EndAuction(c, 7), ErrUnauthorized)

	s.Require().NoError(s.client.Login(c))
	s.ErrorIs(s.client.EndAuction(c, 7), market.ErrAuctionInProgress)
}

func (s *clientSuite) TestUnknownFailure() {
	err := s.client.EndAuction(ctx.Background(), 8)
	s.ErrorIs(err, ErrStatusCodeNotOk)
}

func (s *clientSuite) TestAuctionsAndListing() {
	c := ctx.Background()

	total, indices, err := s.client.Auctions(c, 2, 10)
	s.NoError(err)
	s.Equal(3, total)
	s.Equal([]uint64{7}, indices)

	l, err := s.client.Listing(c, 7)
	s.NoError(err)
	s.True(l.AuctionListed)
	s.True(l.HasBids)
	s.Equal(int64(200), l.Listing.EndTime)
	s.Equal("5", l.HighestBid.Amount)
}

func (s *clientSuite) TestFixedSalesAndUnlist() {
	c := ctx.Background()

	total, indices, err := s.client.FixedSales(c, 0, 50)
	s.NoError(err)
	s.Equal(2, total)
	s.Equal([]uint64{9, 11}, indices)

	s.ErrorIs(s.client.UnlistFixedSale(c, 9), ErrUnauthorized)
	s.Require().NoError(s.client.Login(c))
	s.NoError(s.client.UnlistFixedSale(c, 9))
	s.ErrorIs(s.client.UnlistFixedSale(c, 11), market.ErrNotListedInFixedSale)
}
