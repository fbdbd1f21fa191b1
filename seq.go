// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"code.hybscloud.com/kont"
)

// SendAll sends vs in order and then continues with next.
func SendAll[T, B any](vs []T, next kont.Eff[B]) kont.Eff[B] {
	if len(vs) == 0 {
		return next
	}
	return SendThen(vs[0], SendAll(vs[1:], next))
}

// RecvN receives n values in arrival order and passes them to f.
// f receives an empty slice when n <= 0. The slice is allocated when the
// first value arrives, so each run of the protocol gets its own.
func RecvN[T, B any](n int, f func([]T) kont.Eff[B]) kont.Eff[B] {
	if n <= 0 {
		return f([]T{})
	}
	return RecvBind(func(v T) kont.Eff[B] {
		acc := make([]T, 1, n)
		acc[0] = v
		return recvN(acc, n, f)
	})
}

func recvN[T, B any](acc []T, n int, f func([]T) kont.Eff[B]) kont.Eff[B] {
	if len(acc) >= n {
		return f(acc)
	}
	return RecvBind(func(v T) kont.Eff[B] {
		return recvN(append(acc, v), n, f)
	})
}

// ExprSendAll sends vs in order and then continues with next.
func ExprSendAll[T, B any](vs []T, next kont.Expr[B]) kont.Expr[B] {
	if len(vs) == 0 {
		return next
	}
	return ExprSendThen(vs[0], ExprSendAll(vs[1:], next))
}

// ExprRecvN receives n values in arrival order and passes them to f.
// Each receive frame is built on demand, after the previous value arrives.
func ExprRecvN[T, B any](n int, f func([]T) kont.Expr[B]) kont.Expr[B] {
	if n <= 0 {
		return f([]T{})
	}
	return ExprRecvBind(func(v T) kont.Expr[B] {
		acc := make([]T, 1, n)
		acc[0] = v
		return exprRecvN(acc, n, f)
	})
}

func exprRecvN[T, B any](acc []T, n int, f func([]T) kont.Expr[B]) kont.Expr[B] {
	if len(acc) >= n {
		return f(acc)
	}
	return ExprRecvBind(func(v T) kont.Expr[B] {
		return exprRecvN(append(acc, v), n, f)
	})
}
