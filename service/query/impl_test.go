package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey,omitempty"`
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "endTime", Value: 1},
		{Key: "index", Value: -1},
	}, sortOrder([]string{"endTime", "", "-index"}))
	assert.Empty(t, sortOrder([]string{""}))
}

type querySuite struct {
	suite.Suite
	im *impl
}

func TestQuerySuite(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI is not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupTest() {
	client := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                os.Getenv("MONGO_URI"),
		AuthDBName:         "admin",
		DBName:             dbName,
		SetSafe:            true,
		PoolSizeMultiplier: 1,
	})
	q.im = New(client, false).(*impl)
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestFindOne() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{Dummy: "a", Update: "b"}))

	result := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal(dummy{Dummy: "a", Update: "b"}, *result)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "c"}, result))
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	q.Require().NoError(q.im.EnsureIndex(mockCTX, mockTable, Index{Keys: bson.D{{Key: "dummy", Value: 1}}, Unique: true}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Dummy: "a"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{Dummy: "a"}))
}

func (q *querySuite) TestSearch() {
	for _, v := range []string{"c", "a", "b"} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Dummy: v}))
	}

	res := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 1, 2, "-dummy", bson.M{}, &res))
	q.Equal([]dummy{{Dummy: "b"}, {Dummy: "a"}}, res)

	res = []dummy{}
	q.Require().NoError(q.im.SearchNSorts(mockCTX, mockTable, 0, 10, []string{"dummy"}, bson.M{"dummy": bson.M{"$gte": "b"}}, &res))
	q.Equal([]dummy{{Dummy: "b"}, {Dummy: "c"}}, res)
}

func (q *querySuite) TestUpsertAndRemove() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{Dummy: "a"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{Dummy: "a", Update: "x"}))

	result := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("x", result.Update)

	q.Require().NoError(q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
}

func (q *querySuite) TestRunWithTransaction() {
	// collections have to exist before a transaction writes to them
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Dummy: "seed"}))

	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		q.Require().NoError(q.im.Insert(c, mockTable, dummy{Dummy: "a"}))
		q.Require().NoError(q.im.Insert(c, mockTable, dummy{Dummy: "b"}))
		return errors.New("abort")
	})
	q.Require().Error(err)

	result := &dummy{}
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "b"}, result))

	q.Require().NoError(q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		return q.im.Insert(c, mockTable, dummy{Dummy: "a"})
	}))
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("a", result.Dummy)
}
