package driver_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/orsonlang/orson-mode/internal/driver"
	"github.com/orsonlang/orson-mode/internal/token"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func openCache(t *testing.T) *driver.SpanCache {
	t.Helper()
	c, err := driver.OpenSpanCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return c
}

func TestClassifyFile(t *testing.T) {
	p := writeTemp(t, "demo.ors", "x := max ! pick the larger\n")

	res, err := driver.ClassifyFile(p, driver.Options{})
	if err != nil {
		t.Fatalf("ClassifyFile: %v", err)
	}
	if res.FromCache {
		t.Fatal("first classification reported FromCache")
	}
	if len(res.Spans) == 0 {
		t.Fatal("no spans produced")
	}

	classes := make(map[token.Class]bool)
	for _, sp := range res.Spans {
		classes[sp.Class] = true
	}
	for _, want := range []token.Class{token.ClassOperator, token.ClassPlainName, token.ClassComment} {
		if !classes[want] {
			t.Errorf("missing class %v in %v", want, res.Spans)
		}
	}
}

func TestClassifyFileMissing(t *testing.T) {
	if _, err := driver.ClassifyFile(filepath.Join(t.TempDir(), "absent.ors"), driver.Options{}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestClassifyVirtual(t *testing.T) {
	res := driver.ClassifyVirtual("<stdin>", []byte("''hello''"), driver.Options{Cache: openCache(t)})
	if res.FromCache {
		t.Fatal("virtual classification must bypass the cache")
	}
	if len(res.Spans) != 1 || res.Spans[0].Class != token.ClassString {
		t.Fatalf("spans = %v, want one string span", res.Spans)
	}
	if len(res.Marks) != 2 {
		t.Fatalf("marks = %v, want open and close", res.Marks)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openCache(t)
	p := writeTemp(t, "demo.ors", "if x <= y then min else max\n")
	opts := driver.Options{Cache: cache}

	first, err := driver.ClassifyFile(p, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.FromCache {
		t.Fatal("first run must miss the cache")
	}

	second, err := driver.ClassifyFile(p, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second run must hit the cache")
	}
	if len(second.Spans) != len(first.Spans) {
		t.Fatalf("cached spans = %d, classified = %d", len(second.Spans), len(first.Spans))
	}
	for i := range first.Spans {
		if first.Spans[i] != second.Spans[i] {
			t.Errorf("span %d differs: %v vs %v", i, first.Spans[i], second.Spans[i])
		}
	}
}

func TestCacheInvalidatedOnEdit(t *testing.T) {
	cache := openCache(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "demo.ors")
	opts := driver.Options{Cache: cache}

	if err := os.WriteFile(p, []byte("max"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := driver.ClassifyFile(p, opts); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(p, []byte("min"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := driver.ClassifyFile(p, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Fatal("edited file must not hit the stale entry")
	}
	if res.Spans[0].Text != "min" {
		t.Fatalf("span text = %q, want %q", res.Spans[0].Text, "min")
	}
}

func TestCacheCorruptEntryIsMiss(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cache, err := driver.OpenSpanCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := writeTemp(t, "demo.ors", "max min\n")
	opts := driver.Options{Cache: cache}

	if _, err := driver.ClassifyFile(p, opts); err != nil {
		t.Fatal(err)
	}

	entries, err := filepath.Glob(filepath.Join(dir, "spans", "*.mp"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("cache entries = %v (err %v), want exactly one", entries, err)
	}
	if err := os.WriteFile(entries[0], []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.ClassifyFile(p, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Fatal("corrupt entry must degrade to a miss")
	}
}

func TestClassifyFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	contents := []string{"max", "''lit''", "! only a comment\n", "x := 1"}
	for i, c := range contents {
		p := filepath.Join(dir, fmt.Sprintf("file%d.ors", i))
		if err := os.WriteFile(p, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	results, err := driver.ClassifyFiles(paths, driver.Options{})
	if err != nil {
		t.Fatalf("ClassifyFiles: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("results = %d, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res == nil {
			t.Fatalf("result %d is nil", i)
		}
		if res.File.Path != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, res.File.Path, paths[i])
		}
	}
}

func TestClassifyFilesAbortsOnMissing(t *testing.T) {
	good := writeTemp(t, "ok.ors", "max")
	bad := filepath.Join(t.TempDir(), "absent.ors")
	if _, err := driver.ClassifyFiles([]string{good, bad}, driver.Options{}); err == nil {
		t.Fatal("expected an error when one path is missing")
	}
}
