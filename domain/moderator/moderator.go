package moderator

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

// Moderator may curate the whitelist on behalf of the operator
type Moderator struct {
	Name      string         `json:"name" bson:"name"`
	Address   domain.Address `json:"address" bson:"address"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Moderator, error)
	// FindOne returns nil without error when address is not a moderator
	FindOne(c ctx.Ctx, address domain.Address) (*Moderator, error)
	Create(c ctx.Ctx, value Moderator) error
	Delete(c ctx.Ctx, address domain.Address) error
}

type Usecase interface {
	FindAll(c ctx.Ctx) ([]*Moderator, error)
	Add(c ctx.Ctx, address domain.Address, name string) error
	Remove(c ctx.Ctx, address domain.Address) error
	IsModerator(c ctx.Ctx, address domain.Address) (bool, error)
}
