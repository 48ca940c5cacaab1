package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "air", `{"aqi_us":42}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := c.Get(ctx, "air")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if value != `{"aqi_us":42}` {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestMemoryMiss(t *testing.T) {
	c := NewMemory()
	if _, ok, err := c.Get(context.Background(), "absent"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory()
	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }
	ctx := context.Background()

	if err := c.Set(ctx, "air", "v", 30*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	current = current.Add(29 * time.Second)
	if _, ok, _ := c.Get(ctx, "air"); !ok {
		t.Fatal("expected hit before expiry")
	}

	current = current.Add(2 * time.Second)
	if _, ok, _ := c.Get(ctx, "air"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestMemoryDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "air", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.Delete(ctx, "air"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "air"); ok {
		t.Fatal("expected miss after delete")
	}
}
