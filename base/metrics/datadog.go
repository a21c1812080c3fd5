package metrics

import (
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/log"
)

const (
	// size must stay a power of two for the index mask
	poolSize = 16
	// metrics buffered per client before a flush to the agent
	bufferMetrics = 10
)

// DdPort is the dogstatsd port of the agent
var DdPort = 8125

// sink is the slice of the statsd client the Service needs
type sink interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// sinkPool spreads writes over several clients to avoid one buffer lock
type sinkPool struct {
	next  uint32
	sinks [poolSize]sink
}

func (p *sinkPool) get() sink {
	return p.sinks[atomic.AddUint32(&p.next, 1)&(poolSize-1)]
}

var (
	poolOnce sync.Once
	pool     *sinkPool
)

func newSinkPool(host string) *sinkPool {
	p := &sinkPool{}
	if host == "" {
		log.Log().Info("datadog_host not set, metrics go to debug log")
		for i := range p.sinks {
			p.sinks[i] = logSink{}
		}
		return p
	}

	addr := net.JoinHostPort(host, strconv.Itoa(DdPort))
	for i := range p.sinks {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("statsd.NewBuffered failed")
		}
		p.sinks[i] = cli
	}
	log.Log().WithField("addr", addr).Info("datadog agent connected")
	return p
}

func client() sink {
	poolOnce.Do(func() {
		pool = newSinkPool(viper.GetString("datadog_host"))
	})
	return pool.get()
}

// parseTag pairs up flat key, value arguments into datadog "key:value" tags
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 == 1 {
		log.Log().WithField("tags", tags).Panic("tags must come in key value pairs")
	}
	res := make([]string, 0, len(tags)/2)
	for i := 1; i < len(tags); i += 2 {
		res = append(res, tags[i-1]+":"+tags[i])
	}
	return res
}

func logBumpFailed(err error, key string, val float64, fn string) {
	log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
}
