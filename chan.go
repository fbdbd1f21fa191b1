// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

// Chan is a bidirectional handle to an unbounded FIFO channel.
//
// Chan is a small value: copying it yields another handle to the same
// channel, so any number of goroutines may send and receive through
// copies of one Chan. The underlying buffer lives as long as some handle
// or [Sender] still refers to it; values pending when the last reference
// is dropped are discarded.
//
// The zero Chan has no buffer and panics on use; create channels with [New].
type Chan[T any] struct {
	b *buffer[T]
}

// New creates an empty channel and returns its first handle.
func New[T any](opts ...Option) Chan[T] {
	return Chan[T]{b: newBuffer[T](buildOptions(opts))}
}

// Send appends v to the channel and wakes one blocked receiver, if any.
// Send never blocks. The returned Sender refers to the same channel,
// so sends can be chained:
//
//	ch.Send(1).Send(2).Send(3)
func (c Chan[T]) Send(v T) Sender[T] {
	c.core().insert(v)
	return Sender[T]{b: c.core()}
}

// Recv removes and returns the oldest pending value, blocking until one
// is available. There is no timeout: Recv waits until some handle sends.
func (c Chan[T]) Recv() T {
	return c.core().receive()
}

// TryRecv removes and returns the oldest pending value without blocking.
// If the channel is empty, TryRecv returns the zero value and
// [code.hybscloud.com/iox.ErrWouldBlock].
func (c Chan[T]) TryRecv() (T, error) {
	return c.core().tryReceive()
}

// RecvInto blocks like Recv and stores the value in *dst.
// It returns dst.
func (c Chan[T]) RecvInto(dst *T) *T {
	*dst = c.core().receive()
	return dst
}

// Sender returns a send-only view of the channel.
func (c Chan[T]) Sender() Sender[T] {
	return Sender[T]{b: c.core()}
}

// Len returns the number of values currently pending.
func (c Chan[T]) Len() int {
	return c.core().len()
}

// Stats returns a snapshot of the channel's counters.
func (c Chan[T]) Stats() Stats {
	return c.core().stats()
}

// Serial returns the serial number assigned to this channel.
func (c Chan[T]) Serial() Serial {
	return c.core().serial
}

func (c Chan[T]) core() *buffer[T] {
	if c.b == nil {
		panic("chanq: use of zero Chan; create channels with New")
	}
	return c.b
}
