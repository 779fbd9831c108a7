package httputil

import (
	"errors"
	"testing"
	"time"
)

type payload struct {
	Name string `json:"name"`
}

func TestCacheSetGet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache error = %v", err)
	}

	if err := c.Set("k", payload{Name: "miel"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	var got payload
	ok, err := c.Get("k", &got)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Name != "miel" {
		t.Errorf("Get = %+v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache error = %v", err)
	}

	var got payload
	ok, err := c.Get("missing", &got)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestCacheExpired(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache error = %v", err)
	}

	if err := c.Set("k", payload{Name: "stale"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	var got payload
	ok, err := c.Get("k", &got)
	if ok {
		t.Error("expired entry should not hit")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get error = %v, want ErrExpired", err)
	}
}

func TestCacheNamespace(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache error = %v", err)
	}

	products := c.Namespace("product:")
	seals := c.Namespace("seal:")

	if err := products.Set("1", payload{Name: "p"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := seals.Set("1", payload{Name: "s"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	var got payload
	if ok, _ := products.Get("1", &got); !ok || got.Name != "p" {
		t.Errorf("products namespace returned %+v (hit=%v)", got, ok)
	}
	if ok, _ := seals.Get("1", &got); !ok || got.Name != "s" {
		t.Errorf("seals namespace returned %+v (hit=%v)", got, ok)
	}
}
