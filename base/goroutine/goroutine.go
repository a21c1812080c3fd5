package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/marketcore/base/log"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel yields the
// panic if f panicked and is closed otherwise.
func RecoverableGo(f func(), opts ...Option) chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				logger.WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			} else {
				close(panicChan)
			}
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		f()
	}()

	return panicChan
}
