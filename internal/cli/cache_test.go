package cli

import (
	"context"
	"os"
	"testing"

	"github.com/wqcharts/bizchart/pkg/cache"
)

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		if err := store.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearCache(dir)
	if err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if count != 3 {
		t.Errorf("clearCache() = %d, want 3", count)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache dir should still exist: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after clear", len(entries))
	}
}

func TestCachePathCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	out, err := executeCommand(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if out != "/tmp/xdg/"+appName+"\n" {
		t.Errorf("cache path = %q", out)
	}
}
