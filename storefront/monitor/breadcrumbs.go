package monitor

import (
	"sync"
	"time"
)

const DefaultBreadcrumbCapacity = 100

// Breadcrumb is a timestamped diagnostic note attached to later error reports.
type Breadcrumb struct {
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
	Category  string            `json:"category"`
	Level     Level             `json:"level"`
	Data      map[string]string `json:"data,omitempty"`
}

// Breadcrumbs is a bounded FIFO. Adding past capacity evicts the oldest.
type Breadcrumbs struct {
	mu    sync.Mutex
	items []Breadcrumb
	head  int
	size  int
}

func NewBreadcrumbs(capacity int) *Breadcrumbs {
	if capacity <= 0 {
		capacity = DefaultBreadcrumbCapacity
	}
	return &Breadcrumbs{items: make([]Breadcrumb, capacity)}
}

func (b *Breadcrumbs) Add(c Breadcrumb) {
	b.mu.Lock()
	defer b.mu.Unlock()
	capacity := len(b.items)
	b.items[(b.head+b.size)%capacity] = c
	if b.size < capacity {
		b.size++
		return
	}
	b.head = (b.head + 1) % capacity
}

func (b *Breadcrumbs) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// List returns the breadcrumbs oldest first.
func (b *Breadcrumbs) List() []Breadcrumb {
	return b.Last(-1)
}

// Last returns the most recent k breadcrumbs oldest first. k < 0 returns all.
func (b *Breadcrumbs) Last(k int) []Breadcrumb {
	b.mu.Lock()
	defer b.mu.Unlock()
	if k < 0 || k > b.size {
		k = b.size
	}
	out := make([]Breadcrumb, k)
	capacity := len(b.items)
	start := b.head + b.size - k
	for i := 0; i < k; i++ {
		out[i] = b.items[(start+i)%capacity]
	}
	return out
}

func (b *Breadcrumbs) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head, b.size = 0, 0
}
