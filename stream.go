// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq

import (
	"errors"
	"fmt"
	"io"
)

// Producer is anything that can send values of T.
// Both [Chan] and [Sender] are Producers.
type Producer[T any] interface {
	Send(v T) Sender[T]
}

// Scan reads one space-separated textual value from r, parses it as T
// with fmt.Fscan, and sends it to p. Nothing is sent when parsing fails.
func Scan[T any](r io.Reader, p Producer[T]) error {
	var v T
	if _, err := fmt.Fscan(r, &v); err != nil {
		return err
	}
	p.Send(v)
	return nil
}

// ScanAll calls Scan until r is exhausted and returns the number of
// values sent. Reaching the end of r is not an error.
//
// fmt.Fscan reads rune by rune from readers that are not an
// io.RuneScanner; wrap r in a bufio.Reader when that matters.
func ScanAll[T any](r io.Reader, p Producer[T]) (int, error) {
	n := 0
	for {
		if err := Scan(r, p); err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		n++
	}
}

// Print receives one value from c, blocking until it is available,
// and writes its textual representation to w with fmt.Fprint.
func Print[T any](w io.Writer, c Chan[T]) (int, error) {
	return fmt.Fprint(w, c.Recv())
}
