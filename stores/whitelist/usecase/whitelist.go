package usecase

import (
	"sync"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/domain/whitelist"
	"github.com/x-xyz/marketcore/service/cache"
)

var timeNow = time.Now

type WhitelistUseCaseCfg struct {
	Repo whitelist.Repo
	// Cache holds the yes/no answer per asset, entries are dropped on every change
	Cache cache.Service
}

type impl struct {
	repo  whitelist.Repo
	cache cache.Service

	mu    sync.RWMutex
	hooks []whitelist.RemovedHook
}

func New(cfg *WhitelistUseCaseCfg) whitelist.Usecase {
	return &impl{
		repo:  cfg.Repo,
		cache: cfg.Cache,
	}
}

func cacheKey(token domain.Address, tokenId domain.TokenId) string {
	return keys.RedisKey(string(token.ToLower()), string(tokenId))
}

func (im *impl) IsWhitelisted(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (bool, error) {
	listed := false
	load := func() (interface{}, error) {
		entry, err := im.repo.FindOne(c, token.ToLower(), tokenId)
		if err != nil {
			return nil, err
		}
		return entry != nil, nil
	}
	if err := im.cache.Load(c, cacheKey(token, tokenId), &listed, load); err != nil {
		c.WithField("err", err).Error("cache.Load failed")
		return false, err
	}
	return listed, nil
}

func (im *impl) FindAll(c ctx.Ctx, token domain.Address, offset, limit int) ([]*whitelist.Entry, error) {
	if offset < 0 || limit < 0 {
		return nil, domain.ErrBadParamInput
	}
	return im.repo.FindAll(c, token, offset, limit)
}

func (im *impl) Add(c ctx.Ctx, by domain.Address, token domain.Address, tokenId domain.TokenId) error {
	if !token.IsValid() {
		return domain.ErrInvalidAddress
	} else if !tokenId.IsValid() {
		return domain.ErrBadParamInput
	}

	entry := whitelist.Entry{
		Token:     token.ToLower(),
		TokenId:   tokenId,
		AddedBy:   by.ToLower(),
		CreatedAt: timeNow().UTC(),
	}
	if err := im.repo.Create(c, entry); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return err
	}
	im.invalidate(c, token, tokenId)

	c.WithFields(log.Fields{
		"token":   entry.Token,
		"tokenId": tokenId,
		"by":      entry.AddedBy,
	}).Info("asset whitelisted")
	return nil
}

// Remove runs every RemovedHook once the entry is gone. A failing hook
// does not stop the others, the first error is returned. An entry that is
// already gone still runs the hooks so a failed removal can be retried.
func (im *impl) Remove(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error {
	token = token.ToLower()
	if err := im.repo.Delete(c, token, tokenId); err == domain.ErrNotFound {
		c.WithFields(log.Fields{
			"token":   token,
			"tokenId": tokenId,
		}).Info("whitelist entry already removed")
	} else if err != nil {
		c.WithField("err", err).Error("repo.Delete failed")
		return err
	}
	im.invalidate(c, token, tokenId)

	im.mu.RLock()
	hooks := append([]whitelist.RemovedHook{}, im.hooks...)
	im.mu.RUnlock()

	var first error
	for _, hook := range hooks {
		if err := hook(c, token, tokenId); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"token":   token,
				"tokenId": tokenId,
			}).Error("whitelist removed hook failed")
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (im *impl) OnRemoved(hook whitelist.RemovedHook) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.hooks = append(im.hooks, hook)
}

func (im *impl) invalidate(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) {
	if err := im.cache.Del(c, cacheKey(token, tokenId)); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}
