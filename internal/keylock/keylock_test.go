package keylock

import (
	"sync"
	"testing"
)

func TestSameKeySerializes(t *testing.T) {
	locks := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("alpha")
			defer locks.Unlock("alpha")
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	locks := New()

	locks.Lock("alpha")
	defer locks.Unlock("alpha")

	done := make(chan struct{})
	go func() {
		locks.Lock("beta")
		locks.Unlock("beta")
		close(done)
	}()

	select {
	case <-done:
	default:
		// Give the goroutine a chance to run.
		<-done
	}
}

func TestLockIsReusableAfterUnlock(t *testing.T) {
	locks := New()

	locks.Lock("alpha")
	locks.Unlock("alpha")
	locks.Lock("alpha")
	locks.Unlock("alpha")
}
