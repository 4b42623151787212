package queue

import "sync"

// Memory is a FIFO of hosts. TryTake never blocks, so workers can stop as
// soon as it reports empty.
type Memory struct {
	mu    sync.Mutex
	items []string
	head  int
}

func NewMemory(capacity int) *Memory {
	if capacity < 0 {
		capacity = 0
	}
	return &Memory{items: make([]string, 0, capacity)}
}

// From returns a queue already holding hosts, in order.
func From(hosts []string) *Memory {
	q := NewMemory(len(hosts))
	for _, h := range hosts {
		q.Put(h)
	}
	return q
}

func (q *Memory) Put(host string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, host)
}

func (q *Memory) TryTake() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return "", false
	}
	h := q.items[q.head]
	q.items[q.head] = ""
	q.head++

	// Release the consumed prefix once the queue drains.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return h, true
}

func (q *Memory) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
