package clock

import (
	"sync"
	"time"
)

type Clock struct{}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Now() time.Time {
	return time.Now()
}

func (c *Clock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Mock is safe for concurrent use
type Mock struct {
	mx  sync.Mutex
	now time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{now: value}
}

func (m *Mock) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.now
}

func (m *Mock) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

func (m *Mock) Set(t time.Time) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.now = t
}

func (m *Mock) Advance(d time.Duration) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.now = m.now.Add(d)
}
