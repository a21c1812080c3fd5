package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/ethereum"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/service/redis"
)

const (
	defaultNonceTTL = 10 * time.Minute
	defaultTokenTTL = 24 * time.Hour
)

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate has one %s, replaced by the nonce
	SigningMsgTemplate string
	Redis              redis.Service
	NonceTTL           time.Duration
	TokenTTL           time.Duration
}

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	redis              redis.Service
	nonceTTL           time.Duration
	tokenTTL           time.Duration
}

var timeNow = time.Now

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret:          []byte(cfg.JwtSecret),
		signingMsgTemplate: cfg.SigningMsgTemplate,
		redis:              cfg.Redis,
		nonceTTL:           cfg.NonceTTL,
		tokenTTL:           cfg.TokenTTL,
	}
	if im.nonceTTL == 0 {
		im.nonceTTL = defaultNonceTTL
	}
	if im.tokenTTL == 0 {
		im.tokenTTL = defaultTokenTTL
	}
	return im
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, string(address.ToLower()))
}

func (im *impl) Nonce(c ctx.Ctx, address domain.Address) (string, error) {
	if !address.IsValid() {
		return "", domain.ErrInvalidAddress
	}
	nonce := uuid.NewString()
	if err := im.redis.Set(c, nonceKey(address), []byte(nonce), im.nonceTTL); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return "", err
	}
	return nonce, nil
}

// Login consumes the pending nonce, so a signature can be used once
func (im *impl) Login(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !address.IsValid() {
		return "", domain.ErrInvalidAddress
	}

	nonce, err := im.redis.GetDel(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		c.WithField("err", err).Error("redis.GetDel failed")
		return "", err
	}

	msg := fmt.Sprintf(im.signingMsgTemplate, string(nonce))
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address)); err != nil {
		c.WithField("err", err).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	return im.SignToken(c, address)
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: string(address.ToLower()),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(im.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}
	return "", domain.ErrForbidden
}
