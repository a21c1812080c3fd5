package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/whitelist"
	"github.com/x-xyz/marketcore/service/query"
	mQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

var mockCtx = ctx.Background()

type whitelistRepoSuite struct {
	suite.Suite

	q  *mQuery.Mongo
	im whitelist.Repo
}

func TestWhitelistRepoSuite(t *testing.T) {
	suite.Run(t, new(whitelistRepoSuite))
}

func (s *whitelistRepoSuite) SetupTest() {
	s.q = mQuery.NewMongo(s.T())
	s.im = New(s.q)
}

func (s *whitelistRepoSuite) TestFindOne() {
	qry := bson.M{"token": domain.Address("0xabc"), "tokenId": domain.TokenId("1")}
	s.q.On("FindOne", mockCtx, domain.TableWhitelist, qry, mock.Anything).Return(query.ErrNotFound).Once()
	res, err := s.im.FindOne(mockCtx, "0xABC", "1")
	s.NoError(err)
	s.Nil(res)

	s.q.On("FindOne", mockCtx, domain.TableWhitelist, qry, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(3).(*whitelist.Entry) = whitelist.Entry{Token: "0xabc", TokenId: "1"}
	}).Return(nil).Once()
	res, err = s.im.FindOne(mockCtx, "0xabc", "1")
	s.NoError(err)
	s.Equal(&whitelist.Entry{Token: "0xabc", TokenId: "1"}, res)
}

func (s *whitelistRepoSuite) TestFindAll() {
	sorts := []string{"token", "tokenId"}
	s.q.On("SearchNSorts", mockCtx, domain.TableWhitelist, 0, 10, sorts, bson.M{"token": bson.M{"$exists": true}}, mock.Anything).Return(nil).Once()
	s.q.On("SearchNSorts", mockCtx, domain.TableWhitelist, 10, 5, sorts, bson.M{"token": domain.Address("0xabc")}, mock.Anything).Return(nil).Once()

	res, err := s.im.FindAll(mockCtx, "", 0, 10)
	s.NoError(err)
	s.Empty(res)
	_, err = s.im.FindAll(mockCtx, "0xAbc", 10, 5)
	s.NoError(err)
}

func (s *whitelistRepoSuite) TestCreate() {
	at := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	s.q.On("Insert", mockCtx, domain.TableWhitelist, whitelist.Entry{Token: "0xabc", TokenId: "1", AddedBy: "0xop", CreatedAt: at}).Return(nil).Once()
	s.NoError(s.im.Create(mockCtx, whitelist.Entry{Token: "0xABC", TokenId: "1", AddedBy: "0xOP", CreatedAt: at}))

	s.q.On("Insert", mockCtx, domain.TableWhitelist, mock.Anything).Return(query.ErrDuplicateKey).Once()
	s.ErrorIs(s.im.Create(mockCtx, whitelist.Entry{Token: "0xabc", TokenId: "1"}), domain.ErrConflict)
}

func (s *whitelistRepoSuite) TestDelete() {
	s.q.On("Remove", mockCtx, domain.TableWhitelist, bson.M{"token": domain.Address("0xabc"), "tokenId": domain.TokenId("1")}).Return(query.ErrNotFound).Once()
	s.ErrorIs(s.im.Delete(mockCtx, "0xabc", "1"), domain.ErrNotFound)
}
