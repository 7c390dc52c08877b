package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sandrolain/gomathparse/pkg/cache"
)

func TestCacheGetSet(t *testing.T) {
	c := cache.New[int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Set should replace: Get(a) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New[int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch a so b becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a was recently used and should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c was just inserted and should be present")
	}
}

func TestCacheGetOrCompute(t *testing.T) {
	c := cache.New[string](4)
	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCompute("k", compute)
		if err != nil || v != "value" {
			t.Fatalf("GetOrCompute = (%q, %v), want (value, nil)", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestCacheGetOrComputeErrorNotCached(t *testing.T) {
	c := cache.New[int](4)
	boom := errors.New("boom")
	calls := 0

	compute := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 42, nil
	}

	if _, err := c.GetOrCompute("k", compute); !errors.Is(err, boom) {
		t.Fatalf("first call error = %v, want boom", err)
	}
	v, err := c.GetOrCompute("k", compute)
	if err != nil || v != 42 {
		t.Fatalf("retry = (%d, %v), want (42, nil)", v, err)
	}
	if calls != 2 {
		t.Errorf("compute ran %d times, want 2", calls)
	}
}

func TestCacheInvalidateAndClear(t *testing.T) {
	c := cache.New[int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be gone after Invalidate")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("b should survive Invalidate(a)")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should be gone after Clear")
	}

	// The cache stays usable after Clear.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) after Clear = (%d, %v), want (3, true)", v, ok)
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	if got := cache.New[int](0).Capacity(); got != 256 {
		t.Errorf("Capacity() with zero = %d, want 256", got)
	}
	if got := cache.New[int](-5).Capacity(); got != 256 {
		t.Errorf("Capacity() with negative = %d, want 256", got)
	}
	if got := cache.New[int](10).Capacity(); got != 10 {
		t.Errorf("Capacity() = %d, want 10", got)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := cache.New[int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%32)
				c.Set(key, g*1000+i)
				c.Get(key)
				if i%50 == 0 {
					c.Invalidate(key)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

// Hammers a single hot key with overlapping Get and Set so the race
// detector can observe the fast path in Get, which reads the entry while
// a writer may replace its value in place.
func TestCacheConcurrentSameKey(t *testing.T) {
	c := cache.New[[]int](8)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				c.Set("hot", []int{g, i})
				if v, ok := c.Get("hot"); ok && len(v) != 2 {
					t.Errorf("Get returned a torn value: %v", v)
				}
			}
		}(g)
	}
	wg.Wait()
}
