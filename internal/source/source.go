// Package source reads statement files of various kinds — CSV, spreadsheet,
// PDF, image — into raw material for extraction: either text lines or a
// generic table.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/VeteranWolfy/track-finance/internal/extract"
)

// Kind tells which shape of raw material a reader produced.
type Kind int

const (
	// KindTable means the source yielded a headed table.
	KindTable Kind = iota
	// KindText means the source yielded raw text lines.
	KindText
)

// Input is the raw material read from a statement file.
type Input struct {
	Kind  Kind
	Lines []string
	Table extract.Table
}

// Reader converts a statement file into an Input.
type Reader interface {
	Read(path string) (Input, error)
	Extensions() []string
}

// Registry holds readers keyed by file extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader for each of its extensions. Panics on duplicates.
func (r *Registry) Register(rd Reader) {
	for _, ext := range rd.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = rd
	}
}

// Get returns the reader for an extension (with or without leading dot), or
// nil.
func (r *Registry) Get(ext string) Reader {
	return r.readers[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// Read dispatches on the file's extension.
func (r *Registry) Read(path string) (Input, error) {
	ext := filepath.Ext(path)
	rd := r.Get(ext)
	if rd == nil {
		return Input{}, fmt.Errorf("unsupported statement file type %q", ext)
	}
	return rd.Read(path)
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&TextReader{})
	r.Register(&XLSXReader{})
	r.Register(&XLSReader{})
	r.Register(&PDFReader{})
	r.Register(&ImageReader{})
	return r
}
