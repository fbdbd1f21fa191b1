// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/chanq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

func TestSendRecvOrderThenBlock(t *testing.T) {
	ch := chanq.New[int]()

	go func() {
		ch.Send(1)
		ch.Send(2)
		ch.Send(3)
	}()

	got := make(chan int, 4)
	go func() {
		for range 4 {
			got <- ch.Recv()
		}
	}()

	for _, want := range []int{1, 2, 3} {
		select {
		case v := <-got:
			if v != want {
				t.Fatalf("recv got %d, want %d", v, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %d", want)
		}
	}

	// The fourth receive must stay parked until something is sent.
	select {
	case v := <-got:
		t.Fatalf("fourth recv returned %d on an empty channel", v)
	case <-time.After(50 * time.Millisecond):
	}

	ch.Send(4)
	select {
	case v := <-got:
		if v != 4 {
			t.Fatalf("fourth recv got %d, want 4", v)
		}
	case <-time.After(time.Second):
		t.Fatal("fourth recv not woken by send")
	}
}

func TestTryRecv(t *testing.T) {
	ch := chanq.New[string]()

	if _, err := ch.TryRecv(); !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock on empty channel, got %v", err)
	}

	ch.Send("x")
	v, err := ch.TryRecv()
	if err != nil {
		t.Fatalf("TryRecv error: %v", err)
	}
	if v != "x" {
		t.Fatalf("TryRecv got %q, want %q", v, "x")
	}

	if _, err := ch.TryRecv(); !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock after drain, got %v", err)
	}
}

func TestTryRecvDoesNotBlock(t *testing.T) {
	ch := chanq.New[int]()

	start := time.Now()
	_, err := ch.TryRecv()
	elapsed := time.Since(start)

	if !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
	if elapsed >= 10*time.Millisecond {
		t.Fatalf("TryRecv on empty channel took %v", elapsed)
	}
	if n := ch.Len(); n != 0 {
		t.Fatalf("Len got %d, want 0", n)
	}
}

func TestRecvWakesOnSend(t *testing.T) {
	ch := chanq.New[int]()
	got := make(chan int)
	go func() {
		got <- ch.Recv()
	}()

	time.Sleep(10 * time.Millisecond)
	ch.Send(77)

	select {
	case v := <-got:
		if v != 77 {
			t.Fatalf("recv got %d, want 77", v)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked receiver not woken")
	}
}

func TestCopiesShareChannel(t *testing.T) {
	a := chanq.New[int]()
	b := a

	a.Send(1)
	if v := b.Recv(); v != 1 {
		t.Fatalf("b got %d, want 1", v)
	}

	b.Send(2)
	if v := a.Recv(); v != 2 {
		t.Fatalf("a got %d, want 2", v)
	}

	if a.Serial() != b.Serial() {
		t.Fatalf("copies report different serials: %d != %d", a.Serial(), b.Serial())
	}
}

func TestDistinctChannelsDoNotShare(t *testing.T) {
	a := chanq.New[int]()
	b := chanq.New[int]()

	a.Send(1)
	if _, err := b.TryRecv(); !iox.IsWouldBlock(err) {
		t.Fatalf("value leaked into another channel: %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("Len got %d, want 1", a.Len())
	}
}

func TestChainedSend(t *testing.T) {
	ch := chanq.New[int]()
	ch.Send(1).Send(2).Send(3)

	for want := 1; want <= 3; want++ {
		if v := ch.Recv(); v != want {
			t.Fatalf("recv got %d, want %d", v, want)
		}
	}
}

func TestRecvInto(t *testing.T) {
	ch := chanq.New[string]()
	ch.Send("slot")

	var dst string
	p := ch.RecvInto(&dst)
	if p != &dst {
		t.Fatal("RecvInto should return dst")
	}
	if dst != "slot" {
		t.Fatalf("dst got %q, want %q", dst, "slot")
	}
}

func TestSegmentGrowthKeepsOrder(t *testing.T) {
	ch := chanq.New[int](chanq.WithSegmentSize(4))

	const n = 1000
	for i := range n {
		ch.Send(i)
	}
	if ch.Len() != n {
		t.Fatalf("Len got %d, want %d", ch.Len(), n)
	}
	for i := range n {
		if v := ch.Recv(); v != i {
			t.Fatalf("recv got %d, want %d", v, i)
		}
	}
}

func TestSegmentReuseInterleaved(t *testing.T) {
	ch := chanq.New[int](chanq.WithSegmentSize(4))

	// Alternate bursts so drained segments are recycled while
	// others are still linked.
	next, want := 0, 0
	for round := range 50 {
		for range round%9 + 1 {
			ch.Send(next)
			next++
		}
		for range round%5 + 1 {
			v, err := ch.TryRecv()
			if err != nil {
				break
			}
			if v != want {
				t.Fatalf("round %d: got %d, want %d", round, v, want)
			}
			want++
		}
	}
	for ch.Len() > 0 {
		if v := ch.Recv(); v != want {
			t.Fatalf("drain: got %d, want %d", v, want)
		}
		want++
	}
	if want != next {
		t.Fatalf("received %d values, sent %d", want, next)
	}
}

func TestStats(t *testing.T) {
	ch := chanq.New[int]()
	ch.Send(1).Send(2).Send(3)
	ch.Recv()

	s := ch.Stats()
	if s.Pending != 2 || s.Sent != 3 || s.Received != 1 {
		t.Fatalf("stats got %+v, want {Pending:2 Sent:3 Received:1}", s)
	}
}

func TestConcurrentNoLossNoDuplication(t *testing.T) {
	const (
		producers = 4
		consumers = 4
		perProd   = 2000
		stop      = -1
	)
	ch := chanq.New[int](chanq.WithSegmentSize(16))

	var prodWG sync.WaitGroup
	for p := range producers {
		prodWG.Add(1)
		go func(s chanq.Sender[int]) {
			defer prodWG.Done()
			for i := range perProd {
				s.Send(p*perProd + i)
			}
		}(ch.Sender())
	}

	received := make([][]int, consumers)
	var consWG sync.WaitGroup
	for c := range consumers {
		consWG.Add(1)
		go func() {
			defer consWG.Done()
			for {
				v := ch.Recv()
				if v == stop {
					return
				}
				received[c] = append(received[c], v)
			}
		}()
	}

	prodWG.Wait()
	for range consumers {
		ch.Send(stop)
	}
	consWG.Wait()

	seen := make([]int, producers*perProd)
	for c, vs := range received {
		last := make([]int, producers)
		for i := range last {
			last[i] = -1
		}
		for _, v := range vs {
			seen[v]++
			// Each consumer sees one producer's values in send order.
			p := v / perProd
			if v <= last[p] {
				t.Fatalf("consumer %d saw %d after %d", c, v, last[p])
			}
			last[p] = v
		}
	}
	for v, n := range seen {
		if n != 1 {
			t.Fatalf("value %d received %d times", v, n)
		}
	}
	if ch.Len() != 0 {
		t.Fatalf("Len got %d after drain, want 0", ch.Len())
	}
}

func TestManyParkedReceivers(t *testing.T) {
	const n = 8
	ch := chanq.New[int]()
	got := make(chan int, n)
	for range n {
		go func() {
			got <- ch.Recv()
		}()
	}

	time.Sleep(10 * time.Millisecond)
	for i := range n {
		ch.Send(i)
	}

	sum := 0
	for range n {
		select {
		case v := <-got:
			sum += v
		case <-time.After(time.Second):
			t.Fatal("parked receiver not woken")
		}
	}
	if sum != n*(n-1)/2 {
		t.Fatalf("sum got %d, want %d", sum, n*(n-1)/2)
	}
}

func TestZeroChanPanics(t *testing.T) {
	ops := map[string]func(chanq.Chan[int]){
		"Send":    func(c chanq.Chan[int]) { c.Send(1) },
		"Recv":    func(c chanq.Chan[int]) { c.Recv() },
		"TryRecv": func(c chanq.Chan[int]) { c.TryRecv() },
		"Sender":  func(c chanq.Chan[int]) { c.Sender() },
		"Len":     func(c chanq.Chan[int]) { c.Len() },
		"Exec":    func(c chanq.Chan[int]) { chanq.Exec(c, kont.Pure(0)) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				msg, ok := r.(string)
				if !ok || msg != "chanq: use of zero Chan; create channels with New" {
					t.Fatalf("unexpected panic: %v", r)
				}
			}()
			var zero chanq.Chan[int]
			op(zero)
		})
	}
}
