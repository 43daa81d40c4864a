// Package token defines the vocabulary shared by the classification
// pipeline: the Class enum for semantic categories, classified Spans, and
// fence markers for opaque literal regions.
//
// The package is data-only. Classification itself lives in
// internal/classify; the lexeme tables that feed it live in
// internal/lexicon.
package token
