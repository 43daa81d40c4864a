package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
)

// Current schema version - increment when the payload format changes.
const spanCacheSchemaVersion uint16 = 1

// SpanCache stores classified span sets on disk, keyed by content hash and
// dialect name. Safe for concurrent use.
type SpanCache struct {
	mu  sync.RWMutex
	dir string
}

type spanPayload struct {
	Start uint32
	End   uint32
	Class uint8
	Open  bool
}

type markPayload struct {
	Off  uint32
	Kind uint8
}

type cachePayload struct {
	Schema  uint16
	Dialect string
	Hash    [32]byte
	Spans   []spanPayload
	Marks   []markPayload
}

// OpenSpanCache initializes a cache at the standard location
// ($XDG_CACHE_HOME/app, falling back to ~/.cache/app).
func OpenSpanCache(app string) (*SpanCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SpanCache{dir: dir}, nil
}

// OpenSpanCacheAt initializes a cache rooted at an explicit directory.
func OpenSpanCacheAt(dir string) (*SpanCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SpanCache{dir: dir}, nil
}

func (c *SpanCache) pathFor(hash [32]byte, dialectName string) string {
	key := hex.EncodeToString(hash[:])
	// "spans" subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "spans", key+"-"+dialectName+".mp")
}

// Put serializes and atomically writes a span set to the cache.
func (c *SpanCache) Put(file *source.File, dialectName string, spans []token.Span, marks []token.FenceMark) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema:  spanCacheSchemaVersion,
		Dialect: dialectName,
		Hash:    file.Hash,
		Spans:   make([]spanPayload, 0, len(spans)),
		Marks:   make([]markPayload, 0, len(marks)),
	}
	for _, sp := range spans {
		payload.Spans = append(payload.Spans, spanPayload{
			Start: sp.Span.Start,
			End:   sp.Span.End,
			Class: uint8(sp.Class),
			Open:  sp.Open,
		})
	}
	for _, mk := range marks {
		payload.Marks = append(payload.Marks, markPayload{Off: mk.Off, Kind: uint8(mk.Kind)})
	}

	p := c.pathFor(file.Hash, dialectName)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		_ = os.Remove(tmp)
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads a span set for the file/dialect pair. Any mismatch (missing
// entry, schema drift, stale hash, decode failure) is a miss, never an
// error.
func (c *SpanCache) Get(file *source.File, dialectName string) (spans []token.Span, marks []token.FenceMark, ok bool) {
	if c == nil {
		return nil, nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.pathFor(file.Hash, dialectName))
	if err != nil {
		return nil, nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, nil, false
	}
	if payload.Schema != spanCacheSchemaVersion ||
		payload.Dialect != dialectName ||
		payload.Hash != file.Hash {
		return nil, nil, false
	}

	spans = make([]token.Span, 0, len(payload.Spans))
	for _, sp := range payload.Spans {
		if sp.End > uint32(len(file.Content)) || sp.Start >= sp.End {
			return nil, nil, false
		}
		spans = append(spans, token.Span{
			Span:  source.Span{File: file.ID, Start: sp.Start, End: sp.End},
			Class: token.Class(sp.Class),
			Text:  string(file.Content[sp.Start:sp.End]),
			Open:  sp.Open,
		})
	}
	marks = make([]token.FenceMark, 0, len(payload.Marks))
	for _, mk := range payload.Marks {
		marks = append(marks, token.FenceMark{Off: mk.Off, Kind: token.Fence(mk.Kind)})
	}
	return spans, marks, true
}
