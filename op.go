// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"code.hybscloud.com/kont"
)

// chanDispatcher is the structural interface for operations on a
// bidirectional channel. DispatchChan never waits and reports
// iox.ErrWouldBlock when it cannot make progress; AwaitChan parks
// the calling goroutine until it can.
type chanDispatcher[T any] interface {
	DispatchChan(b *buffer[T]) (kont.Resumed, error)
	AwaitChan(b *buffer[T]) kont.Resumed
}

// senderDispatcher is the subset of operations a Sender can serve.
type senderDispatcher[T any] interface {
	DispatchSender(b *buffer[T]) kont.Resumed
}

// sendResumed is the pre-boxed resumption value of Send.
var sendResumed kont.Resumed = struct{}{}

// Send is the effect operation for sending a value of type T.
// Perform(Send[T]{Value: v}) appends v to the channel.
type Send[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchChan handles Send on a channel. Never blocks.
func (s Send[T]) DispatchChan(b *buffer[T]) (kont.Resumed, error) {
	b.insert(s.Value)
	return sendResumed, nil
}

// AwaitChan handles Send on a channel. Sends never wait.
func (s Send[T]) AwaitChan(b *buffer[T]) kont.Resumed {
	b.insert(s.Value)
	return sendResumed
}

// DispatchSender handles Send through a send-only view.
func (s Send[T]) DispatchSender(b *buffer[T]) kont.Resumed {
	b.insert(s.Value)
	return sendResumed
}

// Recv is the effect operation for receiving a value of type T.
// Perform(Recv[T]{}) resumes with the oldest pending value.
type Recv[T any] struct {
	kont.Phantom[T]
}

// DispatchChan handles Recv on a channel.
// Non-blocking: returns iox.ErrWouldBlock if the channel is empty.
func (Recv[T]) DispatchChan(b *buffer[T]) (kont.Resumed, error) {
	v, err := b.tryReceive()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AwaitChan handles Recv on a channel, parking until a value arrives.
func (Recv[T]) AwaitChan(b *buffer[T]) kont.Resumed {
	return b.receive()
}
