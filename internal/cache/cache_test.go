// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache succeeded")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	if n := c.Len(); n != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", n)
	}
	for _, k := range []int{1, 2} {
		if _, ok := c.Get(k); ok {
			t.Errorf("key %d survived eviction", k)
		}
	}
	for _, k := range []int{0, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d was evicted", k)
		}
	}
}

func TestDeleteFunc(t *testing.T) {
	c := New[int, string](0)
	for i := 0; i < 6; i++ {
		c.Set(i, "x")
	}
	c.DeleteFunc(func(k int) bool { return k%2 == 0 })
	if n := c.Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				c.Set(g*1000+i, i)
				c.Get(i)
			}
		}(g)
	}
	wg.Wait()
	if n := c.Len(); n > 16 {
		t.Errorf("Len() = %d, exceeds the limit", n)
	}
}
