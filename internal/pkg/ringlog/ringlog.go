// Package ringlog keeps the most recent timestamped debug lines in memory.
package ringlog

import (
	"fmt"
	"sync"
	"time"
)

const DefaultCapacity = 500

// Entry is one debug line.
type Entry struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// String renders the entry as "[HH:MM:SS] text" in local time.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.At.Local().Format("15:04:05"), e.Text)
}

// Buffer is a fixed-capacity ring; once full, each append evicts the oldest line.
type Buffer struct {
	mu    sync.RWMutex
	items []Entry
	start int
	size  int
}

// New returns a buffer holding at most capacity lines (DefaultCapacity when <= 0).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{items: make([]Entry, capacity)}
}

// Append stores e and returns it.
func (b *Buffer) Append(e Entry) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	capacity := len(b.items)
	if b.size < capacity {
		b.items[(b.start+b.size)%capacity] = e
		b.size++
		return e
	}
	b.items[b.start] = e
	b.start = (b.start + 1) % capacity
	return e
}

// Entries returns the retained lines, oldest first.
func (b *Buffer) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.items[(b.start+i)%len(b.items)]
	}
	return out
}

// Lines returns the retained lines rendered with String.
func (b *Buffer) Lines() []string {
	entries := b.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

func (b *Buffer) Cap() int {
	return len(b.items)
}
