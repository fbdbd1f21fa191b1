// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import "code.hybscloud.com/atomix"

// Serial identifies one channel buffer.
// Every handle and view of the same channel reports the same serial.
type Serial = uint32

var counter atomix.Uint32

func nextSerial() Serial {
	return counter.Add(1)
}
