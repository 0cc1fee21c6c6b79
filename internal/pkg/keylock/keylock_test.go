package keylock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	l := New()

	var inside int32
	var maxInside int32
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("route-1")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			counter++
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.Len())
}

func TestKeyLock_DifferentKeysDoNotBlock(t *testing.T) {
	l := New()

	unlockA := l.Lock("route-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := l.Lock("route-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key was blocked")
	}
}

func TestKeyLock_UnlockIsIdempotent(t *testing.T) {
	l := New()

	unlock := l.Lock("route-1")
	assert.Equal(t, 1, l.Len())
	unlock()
	unlock()
	assert.Equal(t, 0, l.Len())

	// key can be reacquired after release
	unlock = l.Lock("route-1")
	unlock()
	assert.Equal(t, 0, l.Len())
}
