// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Stats is a point-in-time snapshot of a channel's counters.
type Stats struct {
	Pending  int
	Sent     uint64
	Received uint64
}

// segment is one bounded ring in the pending chain.
// Rings are only touched while the owning buffer's guard is held,
// so each ring sees a single producer and a single consumer.
type segment[T any] struct {
	ring lfq.SPSC[T]
	next *segment[T]
}

// buffer is the shared state behind every handle of one channel.
// pending is a FIFO chain of segments: values enter at tail and
// leave from head. A full tail links a new segment; a drained head
// is unlinked and kept as spare for the next growth.
type buffer[T any] struct {
	guard   sync.Mutex
	arrived *sync.Cond

	head  *segment[T]
	tail  *segment[T]
	spare *segment[T]
	size  int

	pending  int
	sent     uint64
	received uint64

	serial Serial
}

func newBuffer[T any](o options) *buffer[T] {
	b := &buffer[T]{size: o.segmentSize, serial: nextSerial()}
	b.arrived = sync.NewCond(&b.guard)
	seg := b.newSegment()
	b.head, b.tail = seg, seg
	return b
}

func (b *buffer[T]) newSegment() *segment[T] {
	seg := &segment[T]{}
	seg.ring.Init(b.size)
	return seg
}

// insert appends v and wakes at most one parked receiver.
// Never blocks beyond acquiring guard.
func (b *buffer[T]) insert(v T) {
	b.guard.Lock()
	b.push(v)
	b.guard.Unlock()
	b.arrived.Signal()
}

// receive pops the head value, parking on arrived while empty.
func (b *buffer[T]) receive() T {
	b.guard.Lock()
	for b.pending == 0 {
		b.arrived.Wait()
	}
	v := b.pop()
	b.guard.Unlock()
	return v
}

// tryReceive pops the head value, or returns iox.ErrWouldBlock
// without waiting when nothing is pending.
func (b *buffer[T]) tryReceive() (T, error) {
	b.guard.Lock()
	defer b.guard.Unlock()
	if b.pending == 0 {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return b.pop(), nil
}

func (b *buffer[T]) len() int {
	b.guard.Lock()
	defer b.guard.Unlock()
	return b.pending
}

func (b *buffer[T]) stats() Stats {
	b.guard.Lock()
	defer b.guard.Unlock()
	return Stats{Pending: b.pending, Sent: b.sent, Received: b.received}
}

// push requires guard.
func (b *buffer[T]) push(v T) {
	if err := b.tail.ring.Enqueue(&v); err != nil {
		seg := b.spare
		b.spare = nil
		if seg == nil {
			seg = b.newSegment()
		}
		b.tail.next = seg
		b.tail = seg
		if err := seg.ring.Enqueue(&v); err != nil {
			panic("chanq: enqueue on empty segment failed")
		}
	}
	b.pending++
	b.sent++
}

// pop requires guard and pending > 0.
func (b *buffer[T]) pop() T {
	for {
		v, err := b.head.ring.Dequeue()
		if err == nil {
			b.pending--
			b.received++
			return v
		}
		drained := b.head
		if drained.next == nil {
			panic("chanq: pending count out of sync with segments")
		}
		b.head = drained.next
		drained.next = nil
		b.spare = drained
	}
}
