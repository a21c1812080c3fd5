package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MarketError is the body of a rejected market operation
type MarketError struct {
	Code   market.Code `json:"code"`
	Reason string      `json:"reason"`
}

// StatusOf maps err to the status code it is reported with, falling back to status
func StatusOf(err error, status int) int {
	var me *market.Error
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidNumberFormat), errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict), errors.Is(err, query.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, market.ErrNotOperator):
		return http.StatusForbidden
	case errors.Is(err, market.ErrReentrantCall):
		return http.StatusConflict
	case errors.As(err, &me):
		return http.StatusUnprocessableEntity
	}
	return status
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		var me *market.Error
		if errors.As(err, &me) {
			data = MarketError{Code: me.Code, Reason: me.Reason}
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
