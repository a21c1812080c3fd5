package mongoclient

import (
	"context"
	"crypto/tls"
	"errors"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/marketcore/base/log"
)

const (
	socketTimeout  = 60 * time.Second
	connectTimeout = 10 * time.Second
)

// ErrNoReplicaSet is returned when the server cannot run transactions
var ErrNoReplicaSet = errors.New("mongo is not a replica set member")

type Client struct {
	DbName string
	*mongo.Client
}

// Config is the `mongo` section of the service config
type Config struct {
	URI                string  `mapstructure:"uri"`
	AuthDBName         string  `mapstructure:"authDBName"`
	DBName             string  `mapstructure:"dbName"`
	SSL                bool    `mapstructure:"ssl"`
	SetSafe            bool    `mapstructure:"setSafe"`
	PoolSizeMultiplier float64 `mapstructure:"poolSizeMultiplier"`
}

func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"db": cfg.DBName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient dials cfg.URI and checks the server is a replica set
// member, since every market write runs in a transaction
func ConnectMongoClient(cfg Config) (*Client, error) {
	c, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	cs, err := connstring.Parse(cfg.URI)
	if err != nil {
		return nil, err
	}

	logger := log.Log().WithFields(log.Fields{"hosts": cs.Hosts, "db": cfg.DBName})
	client, err := mongo.Connect(c, clientOptions(cfg, cs))
	if err != nil {
		logger.WithField("err", err).Error("mongo.Connect failed")
		return nil, err
	}
	if err := client.Ping(c, readpref.Primary()); err != nil {
		logger.WithField("err", err).Error("mongo ping failed")
		return nil, err
	}
	if err := checkReplicaSet(c, client); err != nil {
		logger.WithField("err", err).Error("mongo topology check failed")
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{DbName: cfg.DBName, Client: client}, nil
}

func clientOptions(cfg Config, cs connstring.ConnString) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetSocketTimeout(socketTimeout).
		SetRetryWrites(true)

	// credentials in the uri authenticate against AuthDBName unless authSource says otherwise
	if cs.Username != "" && cs.AuthSource == "" && cfg.AuthDBName != "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           cs.AuthMechanism,
			AuthMechanismProperties: cs.AuthMechanismProperties,
			Username:                cs.Username,
			Password:                cs.Password,
			PasswordSet:             cs.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	size := poolSize(cfg.PoolSizeMultiplier, len(cs.Hosts))
	opts.SetMaxPoolSize(size).SetMinPoolSize(size / 4)

	if cfg.SSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	if cfg.SetSafe {
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	return opts
}

// poolSize scales with cpus and is split across hosts, each host keeps its own pool
func poolSize(multiplier float64, hosts int) uint64 {
	if multiplier <= 0 {
		multiplier = 1
	}
	if hosts < 1 {
		hosts = 1
	}
	total := int(float64(runtime.NumCPU()) * multiplier)
	per := (total + hosts - 1) / hosts
	if per < 1 {
		per = 1
	}
	return uint64(per)
}

func checkReplicaSet(c context.Context, client *mongo.Client) error {
	var hello struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}
	if err := client.Database("admin").RunCommand(c, bson.D{{Key: "isMaster", Value: 1}}).Decode(&hello); err != nil {
		return err
	}
	// mongos reports msg "isdbgrid" and supports transactions on sharded clusters
	if hello.SetName == "" && hello.Msg != "isdbgrid" {
		return ErrNoReplicaSet
	}
	return nil
}
