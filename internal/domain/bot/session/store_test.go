package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(1)
	require.False(t, ok)

	store.Set(1, UserSession{URL: "https://youtu.be/dQw4w9WgXcQ", Codec: entities.CodecOpus})
	sess, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, entities.CodecOpus, sess.Codec)

	// a new request for the same user overwrites the session
	store.Set(1, UserSession{URL: "https://youtu.be/aB3_x-9Yz01", Codec: entities.CodecM4A})
	sess, ok = store.Get(1)
	require.True(t, ok)
	require.Equal(t, "https://youtu.be/aB3_x-9Yz01", sess.URL)
	require.Equal(t, entities.CodecM4A, sess.Codec)

	store.Delete(1)
	_, ok = store.Get(1)
	require.False(t, ok)

	// deleting a missing session is a no-op
	store.Delete(1)
}

func TestGuardSingleFlight(t *testing.T) {
	guard := NewGuard()

	require.True(t, guard.TryAcquire(42))
	require.False(t, guard.TryAcquire(42))
	require.True(t, guard.IsActive(42))

	// other users are independent
	require.True(t, guard.TryAcquire(43))
	require.Equal(t, 2, guard.ActiveCount())

	guard.Release(42)
	require.False(t, guard.IsActive(42))
	require.Equal(t, 1, guard.ActiveCount())
	require.True(t, guard.TryAcquire(42))
}

func TestGuardReleaseIsIdempotent(t *testing.T) {
	guard := NewGuard()
	guard.Release(7)
	require.True(t, guard.TryAcquire(7))
	guard.Release(7)
	guard.Release(7)
	require.True(t, guard.TryAcquire(7))
}

func TestGuardAcquireIsAtomic(t *testing.T) {
	guard := NewGuard()

	const goroutines = 64
	var acquired int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if guard.TryAcquire(99) {
				atomic.AddInt64(&acquired, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Equal(t, int64(1), acquired)
}
