package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	m.Set("index:page:1", []byte("body"), time.Minute)
	got, ok := m.Get("index:page:1")
	assert.True(t, ok)
	assert.Equal(t, []byte("body"), got)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), -time.Second)

	_, ok := m.Get("k")
	assert.False(t, ok)
}

func TestMemoryInvalidatePrefix(t *testing.T) {
	m := NewMemory()
	m.Set("index:page:1", []byte("a"), time.Minute)
	m.Set("index:page:2", []byte("b"), time.Minute)
	m.Set("other", []byte("c"), time.Minute)

	m.Invalidate("index:")

	_, ok := m.Get("index:page:1")
	assert.False(t, ok)
	_, ok = m.Get("index:page:2")
	assert.False(t, ok)
	_, ok = m.Get("other")
	assert.True(t, ok)
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory()
	m.Set("a", []byte("1"), time.Minute)
	m.Clear()

	_, ok := m.Get("a")
	assert.False(t, ok)
}
