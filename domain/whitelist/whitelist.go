package whitelist

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

// Entry marks (Token, TokenId) as eligible for listing
type Entry struct {
	Token     domain.Address `json:"token" bson:"token"`
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	AddedBy   domain.Address `json:"addedBy" bson:"addedBy"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	// FindOne returns nil without error when there is no entry
	FindOne(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (*Entry, error)
	FindAll(c ctx.Ctx, token domain.Address, offset, limit int) ([]*Entry, error)
	Create(c ctx.Ctx, value Entry) error
	Delete(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error
}

// RemovedHook runs after an entry is removed
type RemovedHook func(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error

type Usecase interface {
	IsWhitelisted(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (bool, error)
	FindAll(c ctx.Ctx, token domain.Address, offset, limit int) ([]*Entry, error)
	Add(c ctx.Ctx, by domain.Address, token domain.Address, tokenId domain.TokenId) error
	Remove(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error
	OnRemoved(hook RemovedHook)
}
