package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	mmiddleware "github.com/x-xyz/marketcore/middleware"
	"github.com/x-xyz/marketcore/service/marketclient"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/auction-ender/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	// the operator key is a secret and normally comes from the environment
	viper.BindEnv("operator.privateKey", "OPERATOR_PRIVATE_KEY")
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	key, err := crypto.HexToECDSA(viper.GetString("operator.privateKey"))
	if err != nil {
		ctx.WithField("err", err).Panic("invalid operator key")
	}

	client := marketclient.NewClient(&marketclient.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("api.timeout"),
		BaseUrl:    viper.GetString("api.baseUrl"),
		Key:        key,
	})

	e := newEnder(&enderCfg{
		Client:   client,
		Interval: viper.GetDuration("ender.interval"),
		PageSize: viper.GetInt("ender.pageSize"),
		Workers:  viper.GetInt("ender.workers"),
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
	<-done
	log.Log().Info("auction ender stopped")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}
