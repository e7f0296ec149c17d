package application

import "sync/atomic"

// IDGenerator hands out increasing game ids starting from a fixed value.
type IDGenerator struct {
	next atomic.Int64
}

// NewIDGenerator returns a generator whose first id is start.
func NewIDGenerator(start int64) *IDGenerator {
	g := &IDGenerator{}
	g.next.Store(start)
	return g
}

// Next returns the next id. It is safe for concurrent use.
func (g *IDGenerator) Next() int64 {
	return g.next.Add(1) - 1
}
