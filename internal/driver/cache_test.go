package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakakWasTaken/biome/internal/printer"
	"github.com/MakakWasTaken/biome/internal/widthcheck"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("biome-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := RenderKey([]byte("payload"), printer.Options{MaxWidth: 80})

	want := &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		Output:     []byte("const a = 1;\n"),
		Violations: []widthcheck.Violation{{Line: 1, Width: 90, Text: "..."}},
	}
	if err := cache.Put(key, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatalf("expected a cache hit")
	}
	if string(got.Output) != string(want.Output) {
		t.Errorf("output = %q, want %q", got.Output, want.Output)
	}
	if len(got.Violations) != 1 || got.Violations[0].Width != 90 {
		t.Errorf("violations not preserved: %+v", got.Violations)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := openTestCache(t)
	var out DiskPayload
	hit, err := cache.Get(RenderKey([]byte("absent"), printer.Options{}), &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Fatalf("unexpected hit")
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache := openTestCache(t)
	key := RenderKey([]byte("old"), printer.Options{})
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1, Output: []byte("stale")}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Fatalf("stale schema must be a miss")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	key := RenderKey([]byte("x"), printer.Options{})
	if err := cache.Put(key, &DiskPayload{}); err != nil {
		t.Fatalf("nil Put failed: %v", err)
	}
	var out DiskPayload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("nil Get = (%v, %v), want miss", hit, err)
	}
}

func TestRenderKeyDependsOnOptions(t *testing.T) {
	data := []byte("same document")
	base := RenderKey(data, printer.Options{MaxWidth: 80, IndentWidth: 2})
	cases := []printer.Options{
		{MaxWidth: 100, IndentWidth: 2},
		{MaxWidth: 80, IndentWidth: 4},
		{MaxWidth: 80, IndentWidth: 2, UseTabs: true},
		{MaxWidth: 80, IndentWidth: 2, LineEnding: printer.LineEndingCRLF},
	}
	for i, opts := range cases {
		if RenderKey(data, opts) == base {
			t.Errorf("case %d: options change did not change the key", i)
		}
	}
	if RenderKey([]byte("other document"), printer.Options{MaxWidth: 80, IndentWidth: 2}) == base {
		t.Errorf("content change did not change the key")
	}
}

func TestRenderPathsUsesCache(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := writeDoc(t, dir, "app.js.doc.json", simpleDoc)

	opts := RenderOptions{Check: true, Cache: cache}
	if _, err := RenderPaths(context.Background(), []string{path}, opts); err != nil {
		t.Fatalf("first RenderPaths failed: %v", err)
	}

	// Poison the cached entry; a hit on the second run proves the layout
	// stage was skipped.
	key := RenderKey([]byte(simpleDoc), opts.Printer)
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Output: []byte("from cache\n")}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	results, err := RenderPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second RenderPaths failed: %v", err)
	}
	if string(results[0].Output) != "from cache\n" {
		t.Fatalf("cache was not consulted, output = %q", results[0].Output)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	results, err = RenderPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("third RenderPaths failed: %v", err)
	}
	if string(results[0].Output) == "from cache\n" {
		t.Fatalf("DropAll did not invalidate the cache")
	}
}

func TestCollectDocFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "app.js.doc.json", simpleDoc)

	files, err := collectDocFiles(context.Background(), []string{path, dir, path})
	if err != nil {
		t.Fatalf("collectDocFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("files = %v, want exactly one entry", files)
	}
	if files[0] != path {
		t.Fatalf("files[0] = %q, want %q", files[0], path)
	}
}

func TestDiskCachePathLayout(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	cache, err := OpenDiskCache("biome")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}
	if err := cache.Put(RenderKey([]byte("x"), printer.Options{}), &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(base, "biome", "docs"))
	if err != nil {
		t.Fatalf("cache dir missing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d cache entries, want 1", len(entries))
	}
}
