package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New memory cache: %v", err)
	}
	defer c.Close()

	val, ok := c.Get("/movie/550")
	if ok {
		t.Fatal("Expected miss for /movie/550")
	}
	if val != nil {
		t.Fatalf("Expected nil value on miss, got %v", val)
	}

	c.Set("/movie/550", []byte(`{"id":550}`))
	val, ok = c.Get("/movie/550")
	if !ok {
		t.Fatal("Expected hit for /movie/550")
	}
	if string(val) != `{"id":550}` {
		t.Fatalf("Unexpected value %s", string(val))
	}
}

func TestMemoryCache_Contains(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if c.Contains("absent") {
		t.Fatal("Expected absent key to not be contained")
	}

	c.Set("present", []byte("data"))
	if !c.Contains("present") {
		t.Fatal("Expected present key to be contained")
	}
}

func TestMemoryCache_Eviction(t *testing.T) {
	evictedKeys := make([]string, 0)
	onEvict := func(key string, _ []byte) {
		evictedKeys = append(evictedKeys, key)
	}

	c, err := New("memory", ProviderConfig{Size: 2, TTL: time.Hour, OnEvict: onEvict})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3")) // evicts "a"

	if len(evictedKeys) != 1 || evictedKeys[0] != "a" {
		t.Fatalf("Expected eviction of 'a', got %v", evictedKeys)
	}
	if c.Contains("a") {
		t.Fatal("Evicted key 'a' should not be present")
	}
	if c.Len() != 2 {
		t.Fatalf("Expected Len 2, got %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("short", []byte("lived"))
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Fatal("Expected entry to expire after TTL")
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("key", []byte("v1"))
	c.Set("key", []byte("v2"))

	val, ok := c.Get("key")
	if !ok || string(val) != "v2" {
		t.Fatalf("Expected v2, got %q (hit=%v)", string(val), ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Expected Len 1 after overwrite, got %d", c.Len())
	}
}

func TestMemoryCache_Remove(t *testing.T) {
	evicted := 0
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, OnEvict: func(string, []byte) { evicted++ }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("/tv/1396", []byte(`{"id":1396}`))
	if !c.Remove("/tv/1396") {
		t.Fatal("Expected Remove to report the key as present")
	}
	if c.Remove("/tv/1396") {
		t.Fatal("Expected second Remove to report the key as absent")
	}
	if c.Len() != 0 {
		t.Fatalf("Expected empty cache, got %d entries", c.Len())
	}
	if evicted != 1 {
		t.Fatalf("Expected Remove to report the entry through OnEvict once, fired %d times", evicted)
	}
}

func TestMemoryCache_SetCopiesBody(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	buf := []byte(`{"id":550}`)
	c.Set("/movie/550", buf)
	buf[1] = 'X'

	val, _ := c.Get("/movie/550")
	if string(val) != `{"id":550}` {
		t.Fatalf("Expected stored body to be independent of the caller buffer, got %s", val)
	}
}
