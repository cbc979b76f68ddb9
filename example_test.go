// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq_test

import (
	"fmt"

	"code.hybscloud.com/slabmq"
)

// ExampleNew demonstrates a single allocate/write/read/free cycle.
func ExampleNew() {
	q, err := slabmq.New(8, 4)
	if err != nil {
		panic(err)
	}
	defer q.Close()

	h, err := q.Alloc()
	if err != nil {
		panic(err)
	}
	copy(q.Bytes(h), []byte("ping"))
	q.Write(h)

	got, err := q.TryRead()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(q.Bytes(got)[:4]))
	q.Free(got)

	// Output:
	// ping
}

// ExampleIsWouldBlock demonstrates the non-blocking error contract
// shared by Alloc and TryRead.
func ExampleIsWouldBlock() {
	q, err := slabmq.New(8, 1)
	if err != nil {
		panic(err)
	}
	defer q.Close()

	one, err := q.Alloc()
	if err != nil {
		panic(err)
	}

	if _, err := q.Alloc(); slabmq.IsWouldBlock(err) {
		fmt.Println("freelist exhausted - applying backpressure")
	}

	q.Write(one)

	if _, err := q.TryRead(); err == nil {
		fmt.Println("message delivered")
	}

	if _, err := q.TryRead(); slabmq.IsWouldBlock(err) {
		fmt.Println("queue empty - no data available")
	}

	// Output:
	// freelist exhausted - applying backpressure
	// message delivered
	// queue empty - no data available
}

// Example_bufferPool demonstrates using a Queue as a buffer pool: every
// slot is written into the Queue up front, and TryRead hands one out as
// a buffer whose payload is written directly into the slot's bytes.
func Example_bufferPool() {
	const poolSize = 4
	const bufSize = 64

	pool := make([][]byte, poolSize)
	for i := range pool {
		pool[i] = make([]byte, bufSize)
	}

	q, err := slabmq.New(bufSize, poolSize)
	if err != nil {
		panic(err)
	}
	defer q.Close()

	for i := 0; i < poolSize; i++ {
		h, err := q.Alloc()
		if err != nil {
			panic(err)
		}
		q.Write(h)
	}

	h, err := q.TryRead()
	if err != nil {
		panic(err)
	}
	copy(q.Bytes(h), "hello")
	fmt.Println(string(q.Bytes(h)[:5]))
	q.Free(h)

	// Output:
	// hello
}
