package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializesSameKey(t *testing.T) {
	kl := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("a")
			defer kl.Unlock("a")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	kl := New()
	kl.Lock("a")
	defer kl.Unlock("a")

	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()
	<-done
}

func TestEntryDroppedAfterLastUnlock(t *testing.T) {
	kl := New()
	kl.Lock("a")
	kl.Unlock("a")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	assert.Empty(t, kl.locks)
}
