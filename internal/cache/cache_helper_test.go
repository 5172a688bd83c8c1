package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "test:"), mr
}

func TestCacheHelper_SetGet(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := helper.Set(ctx, "key1", payload{Name: "abc", Count: 3}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "key1", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "abc" || got.Count != 3 {
		t.Errorf("Get returned %+v, want {abc 3}", got)
	}
}

func TestCacheHelper_GetMissing(t *testing.T) {
	helper, _ := newTestHelper(t)

	var dest string
	err := helper.Get(context.Background(), "missing", &dest)
	if err != ErrCacheNotFound {
		t.Errorf("Get on missing key returned %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "test:")
	ctx := context.Background()

	if err := helper.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Errorf("Set with nil client returned %v, want nil", err)
	}

	var dest string
	if err := helper.Get(ctx, "key", &dest); err != ErrCacheNotAvailable {
		t.Errorf("Get with nil client returned %v, want ErrCacheNotAvailable", err)
	}
}

func TestCacheHelper_Delete(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := helper.Set(ctx, "b", "2", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := helper.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "a", &dest); err != ErrCacheNotFound {
		t.Errorf("key a still present after delete: %v", err)
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	for _, key := range []string{"dashboard:admin", "dashboard:hod", "other:x"} {
		if err := helper.Set(ctx, key, "v", time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	if err := helper.InvalidatePattern(ctx, "dashboard:*"); err != nil {
		t.Fatalf("InvalidatePattern failed: %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "dashboard:admin", &dest); err != ErrCacheNotFound {
		t.Errorf("dashboard:admin survived invalidation: %v", err)
	}
	if err := helper.Get(ctx, "other:x", &dest); err != nil {
		t.Errorf("other:x should survive invalidation, got %v", err)
	}
}

func TestCacheHelper_TTLExpiry(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "expiring", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var dest string
	if err := helper.Get(ctx, "expiring", &dest); err != ErrCacheNotFound {
		t.Errorf("expired key still readable: %v", err)
	}
}
