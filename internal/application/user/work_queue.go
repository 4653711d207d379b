package user

import (
	"context"
	"sync"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

// WorkQueue is the unbounded FIFO hand-off between the CSV producer and the
// ingest workers. It is the only mutable state they share; requeued batches
// rejoin at the tail.
type WorkQueue struct {
	mu     sync.Mutex
	items  []domain.Batch
	signal chan struct{}
}

func NewWorkQueue() *WorkQueue {
	return &WorkQueue{signal: make(chan struct{}, 1)}
}

// Put appends batch at the tail. It never blocks.
func (q *WorkQueue) Put(batch domain.Batch) {
	q.mu.Lock()
	q.items = append(q.items, batch)
	q.mu.Unlock()
	q.notify()
}

// Get removes and returns the head batch, blocking until one is available.
// It returns false only when ctx is done.
func (q *WorkQueue) Get(ctx context.Context) (domain.Batch, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			batch := q.items[0]
			q.items = q.items[1:]
			remaining := len(q.items)
			q.mu.Unlock()
			if remaining > 0 {
				q.notify()
			}
			return batch, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.Batch{}, false
		case <-q.signal:
		}
	}
}

func (q *WorkQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *WorkQueue) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
