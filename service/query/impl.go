package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain"
)

const (
	maxQueryTime = 20 * time.Second
	slowQuery    = 500 * time.Millisecond
	// concurrent transactions per process
	txSlots = 10
)

var timeNow = time.Now

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	slots      chan struct{}
	met        metrics.Service
}

// New returns a Mongo over client. With checkIndex set every read is explained
// first and unindexed reads fail with ErrCollScan; transactions are skipped
// since explain cannot run inside one.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		slots:      make(chan struct{}, txSlots),
		met:        metrics.New("mongo"),
	}
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

// begin tags c with the call and returns the func that records its latency
func (im *impl) begin(c ctx.Ctx, table domain.Table, action string, filter interface{}, sorts []string) (ctx.Ctx, func()) {
	start := timeNow()
	timer := im.met.BumpTime("time", "func", action, "table", string(table))
	c = ctx.WithValues(c, map[string]interface{}{
		"table":  table,
		"action": action,
	})
	return c, func() {
		timer.End()
		if took := timeNow().Sub(start); took >= slowQuery {
			c.WithFields(log.Fields{
				"filter":     filter,
				"sort":       sorts,
				"durationMs": took.Milliseconds(),
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) fail(c ctx.Ctx, msg string, err error) error {
	if _, ok := err.(topology.ConnectionError); ok {
		im.met.BumpSum("conn.err", 1)
	}
	c.WithField("err", err).Error(msg)
	return err
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, doc interface{}) error {
	c, done := im.begin(c, table, "insert", nil, nil)
	defer done()

	_, err := im.coll(table).InsertOne(c, doc)
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return im.fail(c, "InsertOne failed", err)
	}
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, filter, result interface{}) error {
	c, done := im.begin(c, table, "findone", filter, nil)
	defer done()

	if err := im.explain(c, table, "find", bson.E{Key: "filter", Value: filter}); err != nil {
		return err
	}

	err := im.coll(table).FindOne(c, filter, options.FindOne().SetMaxTime(maxQueryTime)).Decode(result)
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return ErrNotFound
	default:
		return im.fail(c, "FindOne failed", err)
	}
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, filter, doc interface{}) error {
	c, done := im.begin(c, table, "upsert", filter, nil)
	defer done()

	if _, err := im.coll(table).ReplaceOne(c, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return im.fail(c, "ReplaceOne failed", err)
	}
	return nil
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, filter, results interface{}) error {
	return im.SearchNSorts(c, table, offset, limit, []string{sort}, filter, results)
}

func (im *impl) SearchNSorts(c ctx.Ctx, table domain.Table, offset, limit int, sorts []string, filter, results interface{}) error {
	c, done := im.begin(c, table, "search", filter, sorts)
	defer done()

	if err := im.explain(c, table, "find", bson.E{Key: "filter", Value: filter}); err != nil {
		return err
	}

	opts := options.Find().
		SetMaxTime(maxQueryTime).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	if order := sortOrder(sorts); len(order) > 0 {
		opts.SetSort(order)
	}

	cur, err := im.coll(table).Find(c, filter, opts)
	if err != nil {
		return im.fail(c, "Find failed", err)
	}
	defer cur.Close(c)

	if err := cur.All(c, results); err != nil {
		return im.fail(c, "cursor.All failed", err)
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, table domain.Table, filter interface{}) error {
	c, done := im.begin(c, table, "remove", filter, nil)
	defer done()

	res, err := im.coll(table).DeleteOne(c, filter)
	if err != nil {
		return im.fail(c, "DeleteOne failed", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) EnsureIndex(c ctx.Ctx, table domain.Table, indices ...Index) error {
	if len(indices) == 0 {
		return nil
	}
	models := make([]mongo.IndexModel, len(indices))
	for i, idx := range indices {
		models[i] = mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetUnique(idx.Unique),
		}
	}
	if _, err := im.coll(table).Indexes().CreateMany(c, models); err != nil {
		return im.fail(ctx.WithValue(c, "table", table), "CreateMany failed", err)
	}
	return nil
}

func (im *impl) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	defer im.met.BumpTime("time", "func", "transaction").End()

	select {
	case im.slots <- struct{}{}:
	case <-c.Done():
		return c.Err()
	}
	defer func() { <-im.slots }()

	if im.checkIndex {
		return run(c)
	}

	sess, err := im.client.StartSession()
	if err != nil {
		return im.fail(c, "StartSession failed", err)
	}
	defer sess.EndSession(c)

	_, err = sess.WithTransaction(c, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.Ctx{Context: sc, Logger: c.Logger})
	})
	return err
}

// sortOrder turns "field" and "-field" into ascending and descending keys
func sortOrder(sorts []string) bson.D {
	order := bson.D{}
	for _, s := range sorts {
		switch {
		case s == "":
		case strings.HasPrefix(s, "-"):
			order = append(order, bson.E{Key: s[1:], Value: -1})
		default:
			order = append(order, bson.E{Key: s, Value: 1})
		}
	}
	return order
}

// explain runs the query planner over a read and rejects collection scans
func (im *impl) explain(c ctx.Ctx, table domain.Table, action string, filter bson.E) error {
	if !im.checkIndex {
		return nil
	}
	cmd := bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: string(table)}, filter}},
		{Key: "verbosity", Value: "queryPlanner"},
	}
	var plan bson.M
	if err := im.client.Database(im.client.DbName).RunCommand(c, cmd).Decode(&plan); err != nil {
		c.WithField("err", err).Warn("explain failed")
		im.met.BumpSum("explain.err", 1)
		return nil
	}
	// plan layout differs across server versions
	if strings.Contains(fmt.Sprintf("%v", plan), "COLLSCAN") {
		c.WithField("filter", filter.Value).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
