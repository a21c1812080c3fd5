package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{met: metrics.New("http")}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext puts a request scoped ctx under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger writes one access line per request, tagged with the
// authenticated caller when there is one
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := accessFields(c, time.Since(start))
			if status := c.Response().Status; status >= http.StatusBadRequest {
				fields["nextErr"] = err
				m.met.BumpSum("request.fail", 1, "path", c.Path(), "status", strconv.Itoa(status))
			}

			logger, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				logger = ctx.Background()
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}

func accessFields(c echo.Context, took time.Duration) log.Fields {
	req, res := c.Request(), c.Response()
	fields := log.Fields{
		"ms":         float64(took) / float64(time.Millisecond),
		"httpStatus": res.Status,
		"httpMethod": req.Method,
		"route":      c.Path(),
		"uri":        req.URL.Path,
		"remoteIP":   c.RealIP(),
		"size":       res.Size,
		"userAgent":  req.UserAgent(),
	}
	if caller, ok := c.Get("address").(domain.Address); ok {
		fields["caller"] = caller
	}
	return fields
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
