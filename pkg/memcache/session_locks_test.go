package memcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_SerializesSameToken(t *testing.T) {
	locks := NewSessionLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire("session-a")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestSessionLocks_ReleasesEntry(t *testing.T) {
	locks := NewSessionLocks()

	release := locks.Acquire("session-a")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks, "released locks should not leak entries")
}

func TestSessionLocks_IndependentTokens(t *testing.T) {
	locks := NewSessionLocks()

	releaseA := locks.Acquire("session-a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := locks.Acquire("session-b")
		releaseB()
		close(done)
	}()

	<-done
}
