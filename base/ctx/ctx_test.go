package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func waitOrDone(c context.Context, d time.Duration) bool {
	select {
	case <-c.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (ts *testsuite) TestWithValue() {
	c := WithValue(Background(), "listing", uint64(7))
	ts.Equal(uint64(7), Value(c, "listing"))
	ts.Nil(Value(c, "missing"))
	// plain string keys do not collide
	ts.Nil(c.Value("listing"))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"caller": "0xabc",
		"index":  3,
	})
	ts.Equal("0xabc", Value(c, "caller"))
	ts.Equal(3, Value(c, "index"))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(waitOrDone(c, 200*time.Millisecond))
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	ts.False(waitOrDone(c, 200*time.Millisecond))
	ts.Equal(context.DeadlineExceeded, c.Err())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "r-1"))
	cancel()
	detached := Detach(parent)
	ts.Error(parent.Err())
	ts.NoError(detached.Err())
	ts.True(waitOrDone(detached, 10*time.Millisecond))
	ts.Nil(Value(detached, "requestID"))
}
