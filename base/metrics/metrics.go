/*Package metrics wraps datadog-go to record service metrics.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

// Ender stops a timer started by BumpTime
type Ender interface {
	End()
}

// Service records metrics under a package prefix
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type Option func(*opt)

type opt struct {
	withPodName bool
}

// WithoutPodName drops the pod tag, which otherwise creates one custom metric per pod
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New returns a Service prefixing every key with pkgName. Metrics go to the
// datadog agent at `datadog_host`, or to the debug log when it is unset.
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	// "host:" removes the host tag datadog would attach otherwise
	tags := []string{
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		tags = append(tags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		tags:    tags,
	}
}

type Metrics struct {
	pkgName string
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) recoverPanic(fn, key string, tags []string) {
	if err := recover(); err != nil {
		client().Count(fn+".panic", 1, []string{"tag:" + mt.key(key) + "#" + strings.Join(tags, "#")}, 1)
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg", key, tags)
	if err := client().Gauge(mt.key(key), val, mt.withTags(tags), 1); err != nil {
		logBumpFailed(err, key, val, "BumpAvg")
	}
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum", key, tags)
	if err := client().Count(mt.key(key), int64(val), mt.withTags(tags), 1); err != nil {
		logBumpFailed(err, key, val, "BumpSum")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram", key, tags)
	if err := client().Histogram(mt.key(key), val, mt.withTags(tags), 1); err != nil {
		logBumpFailed(err, key, val, "BumpHistogram")
	}
}

// BumpTime starts a timer; record a function's duration with
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.withTags(tags),
	}
}

func (mt *Metrics) withTags(tags []string) []string {
	res := make([]string, 0, len(mt.tags)+len(tags)/2)
	res = append(res, mt.tags...)
	return append(res, parseTag(tags)...)
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	defer func() {
		recover()
	}()
	d := time.Since(t.start)
	ms := float64(d) / float64(time.Millisecond)
	if err := client().TimeInMilliseconds(t.key, ms, t.tags, 1); err != nil {
		logBumpFailed(err, t.key, ms, "BumpTime")
	}
}
