// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chanq provides unbounded, thread-safe FIFO channels with
// blocking and non-blocking receive, shared handles, and send-only views.
//
// # Architecture
//
//   - Buffer: one mutex-guarded FIFO per channel. Storage is a chain of bounded rings
//     from [code.hybscloud.com/lfq]; a full tail ring links a new one, so sends never block.
//   - Handles: [Chan] is a copyable reference. Copies alias the same buffer, which
//     is how many producers and consumers share one channel.
//   - Capability: [Sender] is a distinct type exposing only Send. Receiving through
//     a Sender does not compile.
//   - Non-blocking: [Chan.TryRecv] returns [code.hybscloud.com/iox.ErrWouldBlock] on an
//     empty channel. That is the only non-success outcome; it is not a fault.
//   - Blocking: [Chan.Recv] parks on a condition variable until a value arrives.
//     There is no close, no timeout and no cancellation.
//
// # Ordering
//
// Values are delivered in the order their sends acquired the channel lock.
// Each value is delivered to exactly one receiver. When several receivers are
// parked, which one a send wakes is unspecified.
//
// # Effects
//
// Send and receive are also [code.hybscloud.com/kont] effects, so producer and consumer
// protocols can be built as values and driven either to completion or one step at a time:
//
//   - Operations: [Send], [Recv].
//   - Cont-world: [SendThen], [RecvBind], [SendAll], [RecvN].
//   - Expr-world: [ExprSendThen], [ExprRecvBind], [ExprSendAll], [ExprRecvN].
//   - Blocking: [Exec], [ExecExpr], [ExecSender], [ExecSenderExpr], [ExecError].
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) never wait and
//     report iox.ErrWouldBlock, for use inside an event loop.
//   - Interleaving: [Run] and [RunExpr] drive a producer and a consumer on one goroutine;
//     [RunError] and [RunErrorExpr] do the same with the Error effect.
//
// # Example
//
//	ch := chanq.New[int]()
//	ch.Send(1).Send(2)
//	a := ch.Recv() // 1
//	b, _ := ch.TryRecv() // 2
//	if _, err := ch.TryRecv(); iox.IsWouldBlock(err) {
//		// empty
//	}
package chanq
