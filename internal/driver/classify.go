// Package driver orchestrates classification for the CLI: file loading,
// dialect resolution, span caching, and multi-file fan-out.
package driver

import (
	"github.com/orsonlang/orson-mode/internal/classify"
	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/dialect"
	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
)

// Options configure a driver run.
type Options struct {
	// Dialect selects the mode descriptor; nil means the built-in Orson
	// dialect.
	Dialect *dialect.Dialect
	// MaxNotices bounds the diagnostic bag. Zero falls back to a default.
	MaxNotices int
	// Cache, when non-nil, is consulted before classifying and updated
	// after.
	Cache *SpanCache
}

const defaultMaxNotices = 100

func (o Options) dialect() *dialect.Dialect {
	if o.Dialect == nil {
		return dialect.Orson()
	}
	return o.Dialect
}

func (o Options) maxNotices() int {
	if o.MaxNotices <= 0 {
		return defaultMaxNotices
	}
	return o.MaxNotices
}

// Result is the classification of one file.
type Result struct {
	FileSet   *source.FileSet
	File      *source.File
	Spans     []token.Span
	Marks     []token.FenceMark
	Bag       *diag.Bag
	FromCache bool
}

// ClassifyFile loads a file, classifies it under the selected dialect, and
// returns the span set. A usable cache entry short-circuits classification;
// cache failures of any kind degrade to a plain classification.
func ClassifyFile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return classifyLoaded(fs, fs.Get(fileID), opts), nil
}

// ClassifyVirtual classifies in-memory content under a synthetic name.
// Used for stdin and tests; the cache is bypassed.
func ClassifyVirtual(name string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	bypass := opts
	bypass.Cache = nil
	return classifyLoaded(fs, fs.Get(fileID), bypass)
}

func classifyLoaded(fs *source.FileSet, file *source.File, opts Options) *Result {
	d := opts.dialect()
	bag := diag.NewBag(opts.maxNotices())

	if opts.Cache != nil {
		if spans, marks, ok := opts.Cache.Get(file, d.Name()); ok {
			return &Result{
				FileSet:   fs,
				File:      file,
				Spans:     spans,
				Marks:     marks,
				Bag:       bag,
				FromCache: true,
			}
		}
	}

	res := classify.ClassifyAll(file, classify.Options{
		Dialect:  d,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	spans := res.Spans()
	marks := res.FenceMarks()

	if opts.Cache != nil {
		// Best-effort: a failed write never fails the classification.
		_ = opts.Cache.Put(file, d.Name(), spans, marks)
	}

	return &Result{
		FileSet: fs,
		File:    file,
		Spans:   spans,
		Marks:   marks,
		Bag:     bag,
	}
}
