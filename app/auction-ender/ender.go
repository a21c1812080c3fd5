package main

import (
	"errors"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/marketcore/base/backoff"
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/service/marketclient"
)

const (
	defaultInterval = 30 * time.Second
	defaultPageSize = 100
	defaultWorkers  = 4
	maxBackoff      = 5 * time.Minute
)

type enderCfg struct {
	Client   marketclient.Client
	Interval time.Duration
	PageSize int
	Workers  int
	Now      func() time.Time
}

// ender settles every auction that is past its end time and has a bid, then
// unlists the fixed sales that have expired
type ender struct {
	client   marketclient.Client
	interval time.Duration
	pageSize int
	workers  int
	now      func() time.Time
	met      metrics.Service

	mu       sync.Mutex
	loggedIn bool
}

func newEnder(cfg *enderCfg) *ender {
	e := &ender{
		client:   cfg.Client,
		interval: cfg.Interval,
		pageSize: cfg.PageSize,
		workers:  cfg.Workers,
		now:      cfg.Now,
		met:      metrics.New("auctionender"),
	}
	if e.interval <= 0 {
		e.interval = defaultInterval
	}
	if e.pageSize <= 0 {
		e.pageSize = defaultPageSize
	}
	if e.workers <= 0 {
		e.workers = defaultWorkers
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// run sweeps every interval until c is done. Failed sweeps are retried
// with exponential backoff.
func (e *ender) run(c ctx.Ctx) {
	b := backoff.NewExponential(e.interval, maxBackoff)
	for {
		if _, err := e.sweep(c); err != nil {
			c.WithField("err", err).Error("sweep failed")
			if err := b.Backoff(c); err != nil {
				return
			}
			continue
		}
		b.Reset()

		select {
		case <-c.Done():
			return
		case <-time.After(e.interval):
		}
	}
}

type pageFunc func(c ctx.Ctx, offset, count int) (int, []uint64, error)

// due pages through one listing kind and returns the indices ready reports
func (e *ender) due(c ctx.Ctx, page pageFunc, ready func(l *marketclient.Listing) bool) ([]uint64, error) {
	due := []uint64{}
	for offset := 0; ; offset += e.pageSize {
		total, indices, err := page(c, offset, e.pageSize)
		if err != nil {
			return nil, err
		}
		for _, index := range indices {
			l, err := e.client.Listing(c, index)
			if err != nil {
				return nil, err
			}
			if l.Listing != nil && ready(l) {
				due = append(due, index)
			}
		}
		if len(indices) == 0 || offset+len(indices) >= total {
			return due, nil
		}
	}
}

func (e *ender) login(c ctx.Ctx) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loggedIn {
		return nil
	}
	if err := e.client.Login(c); err != nil {
		return err
	}
	e.loggedIn = true
	return nil
}

func (e *ender) logout() {
	e.mu.Lock()
	e.loggedIn = false
	e.mu.Unlock()
}

// sweep ends the due auctions, unlists the expired fixed sales and returns
// how many listings were settled
func (e *ender) sweep(c ctx.Ctx) (int, error) {
	defer e.met.BumpTime("sweep.time").End()

	if err := e.login(c); err != nil {
		return 0, err
	}
	now := e.now().Unix()

	auctions, err := e.due(c, e.client.Auctions, func(l *marketclient.Listing) bool {
		return l.AuctionListed && l.HasBids && l.Listing.EndTime <= now
	})
	if err != nil {
		return 0, err
	}
	ended, err := e.settle(c, auctions, "EndAuction", e.client.EndAuction)
	e.met.BumpSum("auction.ended", float64(ended))
	if err != nil {
		return ended, err
	}

	fixed, err := e.due(c, e.client.FixedSales, func(l *marketclient.Listing) bool {
		return l.FixedListed && l.Listing.EndTime <= now
	})
	if err != nil {
		return ended, err
	}
	unlisted, err := e.settle(c, fixed, "UnlistFixedSale", e.client.UnlistFixedSale)
	e.met.BumpSum("fixedsale.unlisted", float64(unlisted))
	return ended + unlisted, err
}

// settle calls act on every index with the worker pool and counts the successes.
// Market rejections are skipped, any other failure is returned.
func (e *ender) settle(c ctx.Ctx, due []uint64, call string, act func(c ctx.Ctx, index uint64) error) (int, error) {
	if len(due) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(e.workers, goroutines.WithBatchSize(len(due)))
	defer b.Close()
	for _, index := range due {
		index := index
		b.Queue(func() (interface{}, error) {
			return index, act(c, index)
		})
	}
	b.QueueComplete()

	done := 0
	var sweepErr error
	for ret := range b.Results() {
		index := ret.Value().(uint64)
		err := ret.Error()
		var me *market.Error
		switch {
		case err == nil:
			done++
			c.WithFields(log.Fields{"index": index, "call": call}).Info("listing settled")
		case errors.Is(err, marketclient.ErrUnauthorized):
			e.logout()
			sweepErr = err
		case errors.As(err, &me):
			// settled by someone else in the meantime, or not yet due on the server clock
			c.WithFields(log.Fields{"index": index, "call": call, "code": me.Code}).Warn("market rejected")
		default:
			c.WithFields(log.Fields{"index": index, "err": err}).Error("client." + call + " failed")
			sweepErr = err
		}
	}
	return done, sweepErr
}
