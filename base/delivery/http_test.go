package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/market"
)

func TestStatusOf(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusNotFound, StatusOf(domain.ErrNotFound, http.StatusInternalServerError))
	req.Equal(http.StatusBadRequest, StatusOf(xerrors.Errorf("price: %w", domain.ErrInvalidNumberFormat), http.StatusInternalServerError))
	req.Equal(http.StatusForbidden, StatusOf(market.ErrNotOperator, http.StatusInternalServerError))
	req.Equal(http.StatusConflict, StatusOf(market.ErrReentrantCall, http.StatusInternalServerError))
	req.Equal(http.StatusUnprocessableEntity, StatusOf(market.ErrBidTooLow, http.StatusInternalServerError))
	req.Equal(http.StatusInternalServerError, StatusOf(xerrors.New("boom"), http.StatusInternalServerError))
}

func TestMakeJsonResp(t *testing.T) {
	req := require.New(t)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	req.NoError(MakeJsonResp(c, http.StatusInternalServerError, xerrors.Errorf("buy: %w", market.ErrListingExpired)))
	req.Equal(http.StatusUnprocessableEntity, rec.Code)

	res := struct {
		Data   MarketError        `json:"data"`
		Status JsonResponseStatus `json:"status"`
	}{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	req.Equal(JsonResponseStatusFail, res.Status)
	req.Equal(MarketError{Code: "ListingExpired", Reason: "listing expired"}, res.Data)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	req.NoError(MakeJsonResp(c, http.StatusOK, map[string]int{"index": 1}))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":{"index":1},"status":"success"}`, rec.Body.String())
}
