package llm

import (
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/nestegg/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionCache(t *testing.T) {
	ideas := []service.Suggestion{
		{Title: "Cancel unused streaming", Description: "Two video services overlap.", Category: "Subscriptions"},
	}

	t.Run("basic operations", func(t *testing.T) {
		cache := newSuggestionCache(5 * time.Minute)
		defer cache.Close()

		_, found := cache.get("missing")
		assert.False(t, found)

		cache.set("key1", ideas)
		got, found := cache.get("key1")
		require.True(t, found)
		assert.Equal(t, ideas, got)
		assert.Equal(t, 1, cache.size())

		cache.clear()
		assert.Equal(t, 0, cache.size())
	})

	t.Run("expiration", func(t *testing.T) {
		cache := newSuggestionCache(20 * time.Millisecond)
		defer cache.Close()

		cache.set("key2", ideas)
		_, found := cache.get("key2")
		require.True(t, found)

		time.Sleep(50 * time.Millisecond)
		_, found = cache.get("key2")
		assert.False(t, found)

		cache.evictExpired(time.Now())
		assert.Equal(t, 0, cache.size())
	})

	t.Run("concurrent access", func(t *testing.T) {
		cache := newSuggestionCache(5 * time.Minute)
		defer cache.Close()

		var wg sync.WaitGroup
		for range 3 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					cache.set("concurrent", ideas)
					_, _ = cache.get("concurrent")
					_ = cache.size()
				}
			}()
		}
		wg.Wait()

		_, found := cache.get("concurrent")
		assert.True(t, found)
	})
}
