package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	mEvent "github.com/x-xyz/marketcore/domain/event/mocks"
)

var mockCtx = ctx.Background()

type recordingNotifier struct {
	mu   sync.Mutex
	got  []event.Name
	fail bool
	done chan struct{}
	want int
}

func (n *recordingNotifier) Notify(c ctx.Ctx, evt *event.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, evt.Name)
	if len(n.got) == n.want {
		close(n.done)
	}
	if n.fail {
		return errors.New("notify failed")
	}
	return nil
}

type eventSuite struct {
	suite.Suite

	repo *mEvent.Repo
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(eventSuite))
}

func (s *eventSuite) SetupTest() {
	s.repo = mEvent.NewRepo(s.T())
}

func (s *eventSuite) TestStore() {
	im := New(&EventUseCaseCfg{Repo: s.repo})
	evts := []*event.Event{event.New(event.BidPlaced, 1, time.Unix(1, 0))}

	s.NoError(im.Store(mockCtx, nil))

	s.repo.On("Insert", mockCtx, evts).Return(nil).Once()
	s.NoError(im.Store(mockCtx, evts))
}

func (s *eventSuite) TestPublishFansOut() {
	a := &recordingNotifier{done: make(chan struct{}), want: 2}
	b := &recordingNotifier{done: make(chan struct{}), want: 2, fail: true}
	im := New(&EventUseCaseCfg{Repo: s.repo, Notifiers: []event.Notifier{a, b}})

	at := time.Unix(1, 0)
	im.Publish(mockCtx, []*event.Event{event.New(event.BidPlaced, 1, at), event.New(event.AuctionEnded, 1, at)})

	for _, n := range []*recordingNotifier{a, b} {
		select {
		case <-n.done:
		case <-time.After(time.Second):
			s.FailNow("notifier not called")
		}
		n.mu.Lock()
		s.Equal([]event.Name{event.BidPlaced, event.AuctionEnded}, n.got)
		n.mu.Unlock()
	}
}

func (s *eventSuite) TestFindByListing() {
	im := New(&EventUseCaseCfg{Repo: s.repo})

	_, err := im.FindByListing(mockCtx, 1, 0, 0)
	s.ErrorIs(err, domain.ErrBadParamInput)
	_, err = im.FindByListing(mockCtx, 1, -1, 10)
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.repo.On("FindByListing", mockCtx, uint64(1), 0, 10).Return([]*event.Event{}, nil).Once()
	res, err := im.FindByListing(mockCtx, 1, 0, 10)
	s.NoError(err)
	s.Empty(res)
}

func (s *eventSuite) TestStoreError() {
	im := New(&EventUseCaseCfg{Repo: s.repo})
	dbErr := errors.New("db down")
	s.repo.On("Insert", mockCtx, mock.Anything).Return(dbErr).Once()

	s.ErrorIs(im.Store(mockCtx, []*event.Event{event.New(event.BidPlaced, 1, time.Unix(1, 0))}), dbErr)
}
