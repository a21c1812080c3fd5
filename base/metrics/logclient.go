package metrics

import (
	"github.com/x-xyz/marketcore/base/log"
)

// logSink writes metrics to the debug log when no agent is configured
type logSink struct{}

func (logSink) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(log.Fields{
		"metric": kind,
		"key":    name,
		"val":    value,
		"tags":   tags,
	}).Debug("metric")
	return nil
}

func (s logSink) Gauge(name string, value float64, tags []string, _ float64) error {
	return s.emit("gauge", name, value, tags)
}

func (s logSink) Count(name string, value int64, tags []string, _ float64) error {
	return s.emit("count", name, value, tags)
}

func (s logSink) Histogram(name string, value float64, tags []string, _ float64) error {
	return s.emit("histogram", name, value, tags)
}

func (s logSink) TimeInMilliseconds(name string, value float64, tags []string, _ float64) error {
	return s.emit("timeMs", name, value, tags)
}
