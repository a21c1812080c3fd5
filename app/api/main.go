package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/base/database/redisclient"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	bValidator "github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/domain/settlement"
	mmiddleware "github.com/x-xyz/marketcore/middleware"
	"github.com/x-xyz/marketcore/service/cache"
	"github.com/x-xyz/marketcore/service/cache/provider/compound"
	"github.com/x-xyz/marketcore/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/marketcore/service/cache/provider/redis"
	"github.com/x-xyz/marketcore/service/query"
	"github.com/x-xyz/marketcore/service/redis"
	auth_delivery "github.com/x-xyz/marketcore/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/marketcore/stores/auth/usecase"
	custody_delivery "github.com/x-xyz/marketcore/stores/custody/delivery/http"
	custody_usecase "github.com/x-xyz/marketcore/stores/custody/usecase"
	event_repository "github.com/x-xyz/marketcore/stores/event/repository"
	event_usecase "github.com/x-xyz/marketcore/stores/event/usecase"
	hc_delivery "github.com/x-xyz/marketcore/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketcore/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketcore/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/marketcore/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/marketcore/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketcore/stores/listing/usecase"
	moderator_delivery "github.com/x-xyz/marketcore/stores/moderator/delivery/http"
	moderator_repository "github.com/x-xyz/marketcore/stores/moderator/repository"
	moderator_usecase "github.com/x-xyz/marketcore/stores/moderator/usecase"
	settlement_delivery "github.com/x-xyz/marketcore/stores/settlement/delivery/http"
	settlement_repository "github.com/x-xyz/marketcore/stores/settlement/repository"
	settlement_usecase "github.com/x-xyz/marketcore/stores/settlement/usecase"
	vault_delivery "github.com/x-xyz/marketcore/stores/vault/delivery/http"
	vault_usecase "github.com/x-xyz/marketcore/stores/vault/usecase"
	whitelist_delivery "github.com/x-xyz/marketcore/stores/whitelist/delivery/http"
	whitelist_repository "github.com/x-xyz/marketcore/stores/whitelist/repository"
	whitelist_usecase "github.com/x-xyz/marketcore/stores/whitelist/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	viper.BindEnv("auth.jwtSecret", "JWT_SECRET")
	viper.BindEnv("discord.botKey", "DISCORD_BOT_KEY")
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoCfg := mongoclient.Config{}
	if err := viper.UnmarshalKey("mongo", &mongoCfg); err != nil {
		context.WithField("err", err).Panic("invalid mongo config")
	}
	mongoClient := mongoclient.MustConnectMongoClient(mongoCfg)
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init Redis service
	context.Info("init redis cache")
	redisCfg := redisclient.Config{}
	if err := viper.UnmarshalKey("redis_cache", &redisCfg); err != nil {
		context.WithField("err", err).Panic("invalid redis config")
	}
	redisCacheName := viper.GetString("redis_cache.name")
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisclient.MustConnectRedis(redisCfg))

	for name, ensure := range map[string]func(ctx.Ctx, query.Mongo) error{
		"listing":   listing_repository.EnsureIndex,
		"event":     event_repository.EnsureIndex,
		"whitelist": whitelist_repository.EnsureIndex,
		"moderator": moderator_repository.EnsureIndex,
	} {
		if err := ensure(context, q); err != nil {
			context.WithFields(log.Fields{"err": err, "store": name}).Panic("EnsureIndex failed")
		}
	}

	operator := domain.Address(viper.GetString("market.operator")).ToLower()
	marketAddress := domain.Address(viper.GetString("market.address")).ToLower()
	decimals := viper.GetInt32("currency.decimals")
	if !operator.IsValid() || !marketAddress.IsValid() {
		context.Panic("market.operator and market.address must be valid addresses")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	moderatorRepo := moderator_repository.New(q)
	whitelistRepo := whitelist_repository.New(q)
	settlementRepo := settlement_repository.New(q)
	eventRepo := event_repository.New(q)
	listingRepo := listing_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	moderator := moderator_usecase.New(moderatorRepo)
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signingMsgTemplate"),
		Redis:              redisCache,
		NonceTTL:           viper.GetDuration("auth.nonceTTL"),
		TokenTTL:           viper.GetDuration("auth.tokenTTL"),
	})
	whitelist := whitelist_usecase.New(&whitelist_usecase.WhitelistUseCaseCfg{
		Repo: whitelistRepo,
		Cache: cache.New(cache.ServiceConfig{
			Ttl: viper.GetDuration("whitelist.cacheTTL"),
			Pfx: keys.PfxWhitelist,
			Provider: compound.New(
				primitive.New(viper.GetInt("whitelist.localCacheMB")),
				redisProvider.New(redisCache),
			),
		}),
	})
	settlementUC, err := settlement_usecase.New(context, &settlement_usecase.SettlementUseCaseCfg{
		Repo:     settlementRepo,
		Operator: operator,
		Defaults: settlement.Config{
			FixedComPercent:        viper.GetUint64("settlement.fixedComPercent"),
			AuctionComPercent:      viper.GetUint64("settlement.auctionComPercent"),
			MinBidIncrementPercent: viper.GetUint64("settlement.minBidIncrementPercent"),
			CommissionAddress:      domain.Address(viper.GetString("settlement.commissionAddress")).ToLower(),
		},
	})
	if err != nil {
		context.WithField("err", err).Panic("settlement_usecase.New failed")
	}

	notifiers := []event.Notifier{}
	if viper.GetString("discord.botKey") != "" {
		discord, err := event_usecase.NewDiscordNotifier(event_usecase.DiscordNotifierCfg{
			BotKey:    viper.GetString("discord.botKey"),
			ChannelId: viper.GetString("discord.channelId"),
			Decimals:  decimals,
			Symbol:    viper.GetString("currency.symbol"),
			AssetUrl:  viper.GetString("discord.assetUrl"),
		})
		if err != nil {
			context.WithField("err", err).Panic("NewDiscordNotifier failed")
		}
		notifiers = append(notifiers, discord)
	}
	eventUC := event_usecase.New(&event_usecase.EventUseCaseCfg{
		Repo:      eventRepo,
		Notifiers: notifiers,
	})

	// token contracts and balances live in process on devnet
	custody := custody_usecase.New()
	vault := vault_usecase.New()

	listingUC, err := listing_usecase.New(context, &listing_usecase.ListingUseCaseCfg{
		Repo:          listingRepo,
		WhitelistUC:   whitelist,
		Custody:       custody,
		Vault:         vault,
		SettlementUC:  settlementUC,
		EventUC:       eventUC,
		MarketAddress: marketAddress,
		Operator:      operator,
	})
	if err != nil {
		context.WithField("err", err).Panic("listing_usecase.New failed")
	}
	whitelist.OnRemoved(listingUC.PruneAsset)
	// assets revoked while a removal hook was failing are still holding funds
	if pruned, err := listingUC.PruneDelisted(context); err != nil {
		context.WithField("err", err).Error("listingUC.PruneDelisted failed")
	} else if pruned > 0 {
		context.WithField("pruned", pruned).Warn("pruned revoked assets on startup")
	}

	auth_middleware := auth_middleware.New(auth, moderator, operator)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signingMsgTemplate"))
	moderator_delivery.New(e, moderator, auth_middleware)
	whitelist_delivery.New(e, whitelist, auth_middleware)
	settlement_delivery.New(e, settlementUC, auth_middleware)
	listing_delivery.New(e, &listing_delivery.HandlerCfg{
		ListingUC: listingUC,
		EventUC:   eventUC,
		Auth:      auth_middleware,
		Decimals:  decimals,
	})
	if viper.GetBool("devnet.enabled") {
		context.Warn("devnet endpoints enabled")
		custody_delivery.New(e, custody, auth_middleware)
		vault_delivery.New(e, vault, auth_middleware, decimals)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
