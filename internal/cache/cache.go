// Package cache provides the page cache used by the index listing.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is the page-cache service injected into listing handlers.
// Keys are opaque strings; Invalidate drops every entry under a prefix
// so a post mutation can evict all cached pages of a listing at once.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Invalidate(prefix string)
	Clear()
}

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process Cache guarded by a RWMutex.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
}

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{items: make(map[string]entry)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	m.items[key] = entry{value: value, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *Memory) Invalidate(prefix string) {
	m.mu.Lock()
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	m.mu.Unlock()
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.items = make(map[string]entry)
	m.mu.Unlock()
}
