package queue

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopOnEmptyReturnsImmediately(t *testing.T) {
	q := NewBlocking()
	task, ok := q.Pop()
	require.False(t, ok)
	require.Nil(t, task)
}

func TestFIFOOrderWithinOnePusher(t *testing.T) {
	q := NewBlocking()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.Push(func() { order = append(order, i) })
	}

	for i := 0; i < 5; i++ {
		task, ok := q.Pop()
		require.True(t, ok)
		task()
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestEachPushedTaskPoppedAtMostOnce(t *testing.T) {
	q := NewBlocking()
	const n = 2000
	var counted int64

	var producers sync.WaitGroup
	for p := 0; p < 4; p++ {
		producers.Add(1)
		go func() {
			defer producers.Done()
			for i := 0; i < n/4; i++ {
				q.Push(func() { atomic.AddInt64(&counted, 1) })
			}
		}()
	}
	producers.Wait()

	var consumers sync.WaitGroup
	var popped int64
	for c := 0; c < 4; c++ {
		consumers.Add(1)
		go func() {
			defer consumers.Done()
			for {
				task, ok := q.Pop()
				if !ok {
					return
				}
				task()
				atomic.AddInt64(&popped, 1)
			}
		}()
	}
	consumers.Wait()

	require.EqualValues(t, n, popped)
	require.EqualValues(t, n, counted)
	_, ok := q.Pop()
	require.False(t, ok)
}
