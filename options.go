// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import "math/bits"

const (
	// defaultSegmentSize is the ring capacity of each storage segment.
	defaultSegmentSize = 64
	minSegmentSize     = 4
)

type options struct {
	segmentSize int
}

// Option configures a channel created by [New].
type Option func(*options)

// WithSegmentSize sets the ring capacity of each storage segment.
// n is rounded up to a power of two, with a minimum of 4.
// The channel stays unbounded regardless of n; larger segments
// trade memory held by an idle channel for fewer segment links.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		o.segmentSize = n
	}
}

func buildOptions(opts []Option) options {
	o := options{segmentSize: defaultSegmentSize}
	for _, opt := range opts {
		opt(&o)
	}
	o.segmentSize = roundSegmentSize(o.segmentSize)
	return o
}

func roundSegmentSize(n int) int {
	if n <= minSegmentSize {
		return minSegmentSize
	}
	return 1 << bits.Len(uint(n-1))
}
