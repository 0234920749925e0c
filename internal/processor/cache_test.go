package processor

import (
	"fmt"
	"sync"
	"testing"

	"codeberg.org/snonux/gallifreyan/internal/layout"
	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

func TestLayoutCache(t *testing.T) {
	cache := NewLayoutCache()

	// Test empty cache
	if _, _, found := cache.Get("cat"); found {
		t.Error("Expected not found in empty cache")
	}

	tokens := transliterate.Translate("cat")
	wl := &layout.WordLayout{Radius: 400}
	cache.Add("cat", tokens, wl)

	gotTokens, gotLayout, found := cache.Get("cat")
	if !found {
		t.Fatal("Expected to find 'cat' in cache")
	}
	if gotLayout != wl || len(gotTokens) != len(tokens) {
		t.Errorf("Get returned %v/%v", gotTokens, gotLayout)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestLayoutCache_Concurrent(t *testing.T) {
	cache := NewLayoutCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("word%d", i%10)
			cache.Add(key, nil, &layout.WordLayout{})
			cache.Get(key)
		}(i)
	}
	wg.Wait()

	if cache.Len() != 10 {
		t.Errorf("Len() = %d, want 10", cache.Len())
	}
}
