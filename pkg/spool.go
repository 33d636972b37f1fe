// Package pkg provides generic utilities for markhound.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Spool is a disk-backed, append-only buffer for items of type T. The scan
// workflow streams findings into a spool as files are analyzed, so partial
// results survive an interrupted run and large scans never hold every
// finding in memory twice.
type Spool[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Range(fn func(index uint64, item T) error) error
	Close() error
}

type spoolImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewSpool creates a spool backed by the file at path, truncating any
// previous content.
func NewSpool[T any](path string) (Spool[T], error) {
	// #nosec G304 - path is an internal reports location, not user input
	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create spool file", "path", path, "error", err)
		return nil, fmt.Errorf("create spool file: %w", err)
	}

	return &spoolImpl[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append encodes a single item onto the spool.
func (s *spoolImpl[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.append(item)
}

// AppendBatch encodes a batch of items onto the spool.
func (s *spoolImpl[T]) AppendBatch(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if err := s.append(item); err != nil {
			return err
		}
	}

	return nil
}

func (s *spoolImpl[T]) append(item T) error {
	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode spool item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("encode spool item: %w", err)
	}

	s.length++

	return nil
}

// Len returns the number of items appended so far.
func (s *spoolImpl[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Path returns the backing file path.
func (s *spoolImpl[T]) Path() string {
	return s.path
}

// Range re-reads the spool from the start and calls fn for every item.
func (s *spoolImpl[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// #nosec G304 - reading back the file this spool created
	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spool for range", "path", s.path, "error", err)
		return fmt.Errorf("open spool: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spool file", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := uint64(0); i < s.length; i++ {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode spool item", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("decode spool item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes and closes the backing file.
func (s *spoolImpl[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	if err := s.file.Close(); err != nil {
		slog.Error("failed to close spool file", "path", s.path, "error", err)
		return err
	}

	slog.Debug("closed spool", "path", s.path, "length", s.length)
	s.file = nil

	return nil
}
