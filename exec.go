// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"code.hybscloud.com/kont"
)

// chanHandler implements kont.Handler for channel effects on a
// bidirectional handle. Receives park on the buffer's condition.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type chanHandler[T, R any] struct {
	b *buffer[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h chanHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(chanDispatcher[T])
	if !ok {
		panic("chanq: unhandled effect in chanHandler")
	}
	return cop.AwaitChan(h.b), true
}

// senderHandler implements kont.Handler for a send-only view.
// Any operation other than Send is refused.
type senderHandler[T, R any] struct {
	b *buffer[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h senderHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(senderDispatcher[T])
	if !ok {
		panic("chanq: unhandled effect in senderHandler")
	}
	return sop.DispatchSender(h.b), true
}

// Exec runs a Cont-world channel protocol on c.
// Recv effects block until a value is available.
func Exec[T, R any](c Chan[T], protocol kont.Eff[R]) R {
	h := chanHandler[T, R]{b: c.core()}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world channel protocol on c.
// Recv effects block until a value is available.
func ExecExpr[T, R any](c Chan[T], protocol kont.Expr[R]) R {
	h := chanHandler[T, R]{b: c.core()}
	return kont.HandleExpr(protocol, h)
}

// ExecSender runs a send-only Cont-world protocol on s.
// Performing Recv panics: a Sender cannot receive.
func ExecSender[T, R any](s Sender[T], protocol kont.Eff[R]) R {
	h := senderHandler[T, R]{b: s.core()}
	return kont.Handle(protocol, h)
}

// ExecSenderExpr runs a send-only Expr-world protocol on s.
// Performing Recv panics: a Sender cannot receive.
func ExecSenderExpr[T, R any](s Sender[T], protocol kont.Expr[R]) R {
	h := senderHandler[T, R]{b: s.core()}
	return kont.HandleExpr(protocol, h)
}
