// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface of kont's Error effect.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// chanErrorHandler handles both channel and error effects.
// Channel ops park on the buffer. Error ops short-circuit on Throw.
type chanErrorHandler[E, T, A any] struct {
	b      *buffer[T]
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Channel+Error handler.
// Dispatch order: Channel → Error.
func (h chanErrorHandler[E, T, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(chanDispatcher[T]); ok {
		return cop.AwaitChan(h.b), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("chanq: unhandled effect in chanErrorHandler")
}

// ExecError runs a channel protocol with error handling on c.
// Returns Either[E, R]: Right on success, Left on Throw.
// Values sent before a Throw stay in the channel.
func ExecError[E, T, R any](c Chan[T], protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := chanErrorHandler[E, T, R]{b: c.core(), errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr channel protocol with error handling on c.
// Returns Either[E, R]: Right on success, Left on Throw.
func ExecErrorExpr[E, T, R any](c Chan[T], protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := chanErrorHandler[E, T, R]{b: c.core(), errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// RunError creates a channel of T, runs both Cont-world protocols against
// it with error handling, and returns both results as Either values.
// Interleaves execution on the calling goroutine, backing off with
// iox.Backoff when neither side can make progress. A side that throws
// stops at its Left; the other side keeps running.
func RunError[E, T, A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	return RunErrorExpr[E, T](kont.Reify(a), kont.Reify(b))
}

// RunErrorExpr is the Expr-world variant of [RunError].
func RunErrorExpr[E, T, A, B any](a kont.Expr[A], b kont.Expr[B]) (kont.Either[E, A], kont.Either[E, B]) {
	c := New[T]()
	resultA, suspA := StepError[E, A](a)
	resultB, suspB := StepError[E, B](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = AdvanceError[E](c, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = AdvanceError[E](c, suspB)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// StepError evaluates a channel protocol with error support until the
// first effect suspension. Returns (Either[E, R], nil) on completion or
// error, or (zero, suspension) if pending.
func StepError[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation on c.
// Channel ops never wait (iox.ErrWouldBlock on an empty Recv).
// Error ops are eager: Throw discards the suspension and returns Left.
func AdvanceError[E, T, R any](c Chan[T], susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	if cop, ok := susp.Op().(chanDispatcher[T]); ok {
		v, err := cop.DispatchChan(c.core())
		if err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("chanq: unhandled effect in AdvanceError")
}
