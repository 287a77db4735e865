package logger

import (
	"sync"
	"time"
)

// Level is a log severity
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is a recorded log message
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// RingBuffer is a thread-safe circular buffer of log entries
type RingBuffer struct {
	entries []Entry
	head    int
	size    int
	mu      sync.RWMutex
}

// NewRingBuffer creates a buffer holding at most capacity entries
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{
		entries: make([]Entry, capacity),
	}
}

// Add inserts an entry, overwriting the oldest when full
func (b *RingBuffer) Add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = entry
	b.head = (b.head + 1) % len(b.entries)
	if b.size < len(b.entries) {
		b.size++
	}
}

// Recent returns up to limit entries, newest first, optionally filtered by level
func (b *RingBuffer) Recent(limit int, level Level) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if limit <= 0 || limit > b.size {
		limit = b.size
	}

	result := make([]Entry, 0, limit)
	capacity := len(b.entries)
	for i := 0; i < b.size && len(result) < limit; i++ {
		entry := b.entries[(b.head-1-i+capacity)%capacity]
		if level == "" || entry.Level == level {
			result = append(result, entry)
		}
	}
	return result
}

// Len returns the number of stored entries
func (b *RingBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Reset drops all entries
func (b *RingBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make([]Entry, len(b.entries))
	b.head = 0
	b.size = 0
}
