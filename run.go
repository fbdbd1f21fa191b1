// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run creates a channel of T, runs both Cont-world protocols against it,
// and returns both results. Both sides share the one channel.
// Execution interleaves on the calling goroutine, backing off with
// iox.Backoff when neither side can make progress. Does not spawn
// goroutines. If both sides wait on Recv forever, Run never returns.
func Run[T, A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr[T](kont.Reify(a), kont.Reify(b))
}

// RunExpr is the Expr-world variant of [Run].
func RunExpr[T, A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	c := New[T]()
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(c, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(c, suspB)
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
