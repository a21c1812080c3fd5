package usecase

import (
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/goroutine"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
)

const maxPageSize = 1000

type EventUseCaseCfg struct {
	Repo      event.Repo
	Notifiers []event.Notifier
}

type impl struct {
	repo      event.Repo
	notifiers []event.Notifier
	met       metrics.Service
}

func New(cfg *EventUseCaseCfg) event.Usecase {
	return &impl{
		repo:      cfg.Repo,
		notifiers: cfg.Notifiers,
		met:       metrics.New("event"),
	}
}

func (im *impl) Store(c ctx.Ctx, evts []*event.Event) error {
	if len(evts) == 0 {
		return nil
	}
	if err := im.repo.Insert(c, evts); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return err
	}
	return nil
}

// Publish hands the events to each notifier on its own goroutine, in order.
// Notifier failures are logged and dropped.
func (im *impl) Publish(c ctx.Ctx, evts []*event.Event) {
	if len(evts) == 0 {
		return
	}
	c = ctx.Detach(c)
	for _, n := range im.notifiers {
		n := n
		goroutine.RecoverableGo(func() {
			for _, evt := range evts {
				if err := n.Notify(c, evt); err != nil {
					im.met.BumpSum("notify.err", 1, "event", string(evt.Name))
					c.WithFields(log.Fields{
						"err":          err,
						"event":        evt.Name,
						"listingIndex": evt.ListingIndex,
					}).Error("notifier.Notify failed")
				}
			}
		})
	}
}

func (im *impl) FindByListing(c ctx.Ctx, index uint64, offset, limit int) ([]*event.Event, error) {
	if offset < 0 || limit <= 0 || limit > maxPageSize {
		return nil, domain.ErrBadParamInput
	}
	return im.repo.FindByListing(c, index, offset, limit)
}
