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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prioritized struct {
	id       int
	priority Priority
}

func (p prioritized) Priority() Priority { return p.priority }

func TestPriorityQueue_MaxPriorityFirst(t *testing.T) {
	queue := newPriorityQueue()

	queue.push(prioritized{id: 1, priority: Low})
	queue.push(prioritized{id: 2, priority: High})
	queue.push(prioritized{id: 3, priority: Medium})
	queue.push(prioritized{id: 4, priority: Stop})

	var popped []Priority
	for {
		msg, ok := queue.pop()
		if !ok {
			break
		}
		popped = append(popped, PriorityOf(msg))
	}

	assert.Equal(t, []Priority{Stop, High, Medium, Low}, popped)
	assert.True(t, queue.isEmpty())
}

func TestPriorityQueue_FIFOAmongEqualPriorities(t *testing.T) {
	queue := newPriorityQueue()

	// interleave two priorities; submission order must hold within each
	for i := 0; i < 10; i++ {
		queue.push(prioritized{id: i, priority: Low})
		queue.push(prioritized{id: i, priority: High})
	}

	for want := 0; want < 10; want++ {
		msg, ok := queue.pop()
		require.True(t, ok)
		assert.Equal(t, High, PriorityOf(msg))
		assert.Equal(t, want, msg.(prioritized).id)
	}
	for want := 0; want < 10; want++ {
		msg, ok := queue.pop()
		require.True(t, ok)
		assert.Equal(t, Low, PriorityOf(msg))
		assert.Equal(t, want, msg.(prioritized).id)
	}
}

func TestPriorityQueue_DefaultRank(t *testing.T) {
	queue := newPriorityQueue()

	// a message that does not implement Prioritized ranks Medium
	queue.push(prioritized{priority: Low})
	queue.push("unranked")
	queue.push(prioritized{priority: High})

	first, _ := queue.pop()
	second, _ := queue.pop()
	third, _ := queue.pop()

	assert.Equal(t, High, PriorityOf(first))
	assert.Equal(t, "unranked", second)
	assert.Equal(t, Low, PriorityOf(third))
}

func TestPriorityQueue_EmptyPop(t *testing.T) {
	queue := newPriorityQueue()
	msg, ok := queue.pop()
	assert.Nil(t, msg)
	assert.False(t, ok)
	assert.True(t, queue.isEmpty())
	assert.Zero(t, queue.len())
}

func TestPriorityQueue_Length(t *testing.T) {
	queue := newPriorityQueue()
	for i := 0; i < 5; i++ {
		queue.push(prioritized{priority: Medium})
	}
	assert.EqualValues(t, 5, queue.len())
	queue.pop()
	assert.EqualValues(t, 4, queue.len())
}

func TestPriorityQueue_ConcurrentProducer(t *testing.T) {
	queue := newPriorityQueue()
	perProducer := 100
	producers := 4

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for m := 0; m < perProducer; m++ {
				queue.push(prioritized{priority: Medium})
			}
		}()
	}
	wg.Wait()

	count := 0
	for {
		if _, ok := queue.pop(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}
