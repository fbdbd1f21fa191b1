// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

// Sender is a send-only view of a channel.
// It holds its own reference to the channel, independent of the Chan it
// was derived from, and exposes no way to receive.
// The zero Sender panics on use; obtain one from [Chan.Sender] or [Chan.Send].
type Sender[T any] struct {
	b *buffer[T]
}

// Send appends v to the channel and returns s for chaining.
func (s Sender[T]) Send(v T) Sender[T] {
	s.core().insert(v)
	return s
}

// Serial returns the serial number of the underlying channel.
func (s Sender[T]) Serial() Serial {
	return s.core().serial
}

func (s Sender[T]) core() *buffer[T] {
	if s.b == nil {
		panic("chanq: use of zero Sender; derive senders from a Chan")
	}
	return s.b
}
