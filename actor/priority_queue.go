// MIT License
//
// Copyright (c) 2025-2026 Priact Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	hp "container/heap"
	"sync"

	"go.uber.org/atomic"
)

// envelope pairs a queued message with its priority and a monotonically
// increasing enqueue sequence number.
type envelope struct {
	message  any
	priority Priority
	seq      uint64
}

// messageHeap implements the standard heap.Interface.
//
// Ordering is fixed: greater priority first, and FIFO by enqueue sequence
// among equal priorities. The sequence tiebreaker makes the pop order stable
// even though the underlying binary heap is not.
type messageHeap []*envelope

// enforce compilation error
var _ hp.Interface = (*messageHeap)(nil)

func (h *messageHeap) Len() int {
	return len(*h)
}

func (h *messageHeap) Less(i, j int) bool {
	a, b := (*h)[i], (*h)[j]
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

func (h *messageHeap) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *messageHeap) Push(x any) {
	*h = append(*h, x.(*envelope))
}

// Pop is called after the first element is swapped with the last
// so return the last element and resize the slice
func (h *messageHeap) Pop() any {
	last := len(*h) - 1
	element := (*h)[last]
	(*h)[last] = nil
	*h = (*h)[:last]
	return element
}

// priorityQueue is the lock-protected, unbounded priority queue shared by the
// ingestion and processing loops of one actor.
//
// Concurrency model
//   - push is safe for concurrent producers, though the runtime funnels all
//     pushes through the single ingestion loop; pop is called by the
//     processing loop only. Both take the same mutex, and the mutex is never
//     held across a suspension point.
//   - length is tracked with an atomic counter for observability; it is a
//     best-effort snapshot, not a synchronization primitive.
type priorityQueue struct {
	mu     sync.Mutex
	heap   messageHeap
	seq    uint64
	length atomic.Int64
}

func newPriorityQueue() *priorityQueue {
	queue := &priorityQueue{
		heap: make(messageHeap, 0),
	}
	hp.Init(&queue.heap)
	return queue
}

// push inserts a message, stamping it with the next enqueue sequence number.
// Complexity is O(log n).
func (q *priorityQueue) push(msg any) {
	q.mu.Lock()
	q.seq++
	hp.Push(&q.heap, &envelope{
		message:  msg,
		priority: PriorityOf(msg),
		seq:      q.seq,
	})
	q.mu.Unlock()
	q.length.Inc()
}

// pop removes and returns the message with the greatest priority, breaking
// ties FIFO by enqueue sequence. It returns false when the queue is empty.
func (q *priorityQueue) pop() (any, bool) {
	q.mu.Lock()
	if len(q.heap) == 0 {
		q.mu.Unlock()
		return nil, false
	}
	element := hp.Pop(&q.heap).(*envelope)
	q.mu.Unlock()
	q.length.Dec()
	return element.message, true
}

// len returns a snapshot of the number of queued messages.
func (q *priorityQueue) len() int64 {
	return q.length.Load()
}

// isEmpty returns true when the queue holds no messages.
func (q *priorityQueue) isEmpty() bool {
	return q.len() == 0
}
