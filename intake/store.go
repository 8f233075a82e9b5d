// Package intake is the narrow trace-ingestion interface between the test
// orchestrator and the checker: runners push named log blobs, the checker
// pulls them before scanning. The core engine never touches the network;
// this package is the external collaborator that supplies it text.
package intake

import (
	"errors"
	"sync"

	"uconn.dev/tracecheck/tracecid"
)

var (
	ErrNotFound    = errors.New("intake: trace not found")
	ErrInvalidName = errors.New("intake: invalid trace name")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// Store holds named trace blobs for one test run.
type Store interface {
	// Put stores text under name, replacing any previous blob, and returns
	// the CID fingerprint of the stored bytes.
	Put(name string, text []byte) (string, error)
	Get(name string) ([]byte, error)
	Has(name string) bool
}

// MemStore is an in-memory Store. Safe for concurrent use; traces live only
// for the duration of one orchestrated run.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Put(name string, text []byte) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := append([]byte(nil), text...)
	s.blobs[name] = cp
	return tracecid.Fingerprint(cp), nil
}

func (s *MemStore) Get(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *MemStore) Has(name string) bool {
	if name == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[name]
	return ok
}
