// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq_test

import (
	"code.hybscloud.com/chanq"
	"code.hybscloud.com/kont"
)

// execExpr drives a protocol to completion on c via Step+Advance loop.
// Retries on iox.ErrWouldBlock (nothing sent yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[T, R any](c chanq.Chan[T], protocol kont.Expr[R]) R {
	result, susp := chanq.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = chanq.Advance(c, susp)
		if err != nil {
			continue
		}
	}
	return result
}
