// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package allocator

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/memfill/internal/chunk"
	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
)

const (
	mebibyte = 1 << 20
	gibibyte = 1 << 30

	// MinAdjustInterval is the minimum time between two small adjustments.
	MinAdjustInterval = time.Second
	// MinImmediateAdjustment is the smallest growth applied without waiting
	// for MinAdjustInterval.
	MinImmediateAdjustment = 2 * mebibyte
	// SingleChunkLimit is the allocation below which a single chunk is used.
	SingleChunkLimit = 16 * mebibyte
	// ChunkSplitSize is the allocation granted per chunk for large requests.
	ChunkSplitSize = gibibyte
)

// Pool is an ordered set of chunks. Adjustments spawn new chunks at the end
// and free from the end. Size may be called concurrently with the mutating
// methods.
type Pool struct {
	spawner Spawner
	log     *logger.Logger
	now     func() time.Time

	mu             sync.RWMutex
	chunks         []chunk.Handle
	lastAdjustment time.Time
}

// PoolOption customises a Pool.
type PoolOption func(*Pool)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) PoolOption {
	return func(p *Pool) {
		p.now = now
	}
}

// NewPool returns an empty pool. The throttle window starts at creation, so
// the first small adjustment waits MinAdjustInterval.
func NewPool(spawner Spawner, log *logger.Logger, opts ...PoolOption) *Pool {
	p := &Pool{
		spawner: spawner,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lastAdjustment = p.now()

	return p
}

// Size returns the bytes held by live chunks.
func (p *Pool) Size() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var total uint64
	for _, c := range p.chunks {
		total += c.Size()
	}
	return total
}

// Len returns the number of live chunks.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, c := range p.chunks {
		if c.Size() > 0 {
			n++
		}
	}
	return n
}

// Check reaps chunks whose process has exited and drops them from the pool.
func (p *Pool) Check() {
	p.mu.Lock()
	defer p.mu.Unlock()

	live := p.chunks[:0]
	for _, c := range p.chunks {
		c.Check()
		if c.Size() > 0 {
			live = append(live, c)
		}
	}
	clear(p.chunks[len(live):])
	p.chunks = live
}

// Resize adjusts the pool to hold target bytes.
func (p *Pool) Resize(ctx context.Context, target uint64) {
	p.AdjustBy(ctx, int64(target)-int64(p.Size()))
}

// AdjustBy grows (delta > 0) or shrinks (delta < 0) the pool.
//
// Adjustments smaller than MinImmediateAdjustment, shrinking included, are
// applied at most once per MinAdjustInterval. Shrinking frees whole chunks
// from the end until at least -delta bytes are released; any excess is
// allocated again. Growth of less than SingleChunkLimit uses one chunk,
// larger growth is split into max(2, n/ChunkSplitSize) equal chunks.
//
// Chunks are freed and spawned without holding the pool lock, so AdjustBy
// must not be called concurrently with itself.
func (p *Pool) AdjustBy(ctx context.Context, delta int64) {
	if !p.admit(delta) {
		return
	}

	var freed int64
	for freed < -delta {
		last := p.popLast()
		if last == nil {
			break
		}
		freed += int64(last.Free())
	}

	allocate := freed + delta
	if allocate <= 0 {
		return
	}

	count := int64(1)
	if allocate >= SingleChunkLimit {
		count = max(2, allocate/ChunkSplitSize)
	}

	size := uint64(allocate / count)
	for range count {
		c, err := p.spawner.Spawn(ctx, size)
		if err != nil {
			p.log.Error().Err(err).Str("size", utils.FormatBytes(size)).Msg("error allocating chunk")
			continue
		}
		p.log.Debug().Int("pid", c.PID()).Str("size", utils.FormatBytes(size)).Msg("chunk allocated")
		p.push(c)
	}
}

// admit applies the throttle and records the adjustment time.
func (p *Pool) admit(delta int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastAdjustment) < MinAdjustInterval && delta < MinImmediateAdjustment {
		return false
	}
	p.lastAdjustment = now
	return true
}

func (p *Pool) popLast() chunk.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.chunks)
	if n == 0 {
		return nil
	}
	last := p.chunks[n-1]
	p.chunks[n-1] = nil
	p.chunks = p.chunks[:n-1]
	return last
}

func (p *Pool) push(c chunk.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.chunks = append(p.chunks, c)
}

// Release frees every chunk and returns the number of bytes released.
func (p *Pool) Release() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	var freed uint64
	for i := len(p.chunks) - 1; i >= 0; i-- {
		freed += p.chunks[i].Free()
	}
	p.chunks = nil

	return freed
}
