package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHash(t *testing.T) {
	a := Hash([]byte("hello"))
	b := Hash([]byte("hello"))
	c := Hash([]byte("world"))

	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a))
	}
	if a != b {
		t.Errorf("Hash not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Error("distinct inputs produced the same hash")
	}
}

func TestKeys(t *testing.T) {
	hash := Hash([]byte("data"))

	if got, want := SnapshotKey(hash), "snapshot:"+hash; got != want {
		t.Errorf("SnapshotKey = %q, want %q", got, want)
	}
	if got, want := RenderKey(hash, "svg"), "render:"+hash+":svg"; got != want {
		t.Errorf("RenderKey = %q, want %q", got, want)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "absent"); err != nil || hit {
		t.Fatalf("Get(absent) = hit %v, err %v; want miss", hit, err)
	}

	want := []byte(`{"nodes":[],"edges":[]}`)
	if err := c.Set(ctx, "key", want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("Get missed after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "key", []byte("data"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get after expiry = hit %v, err %v; want miss", hit, err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	hash := Hash([]byte("key"))
	path := filepath.Join(dir, hash[:2], hash[2:]+".json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt entry: %v", err)
	}

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get on corrupt entry = hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry not removed")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get hit after Delete")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	for _, key := range []string{"one", "two", "three"} {
		if err := c.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear, want 0", len(entries))
	}
}

func TestFileEntryOmitsZeroExpiry(t *testing.T) {
	raw, err := json.Marshal(fileEntry{Data: []byte("x")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if bytes.Contains(raw, []byte("expires_at")) {
		t.Errorf("zero expiry serialized: %s", raw)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get = hit %v, err %v; want miss", hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
