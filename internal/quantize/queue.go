package quantize

import "container/heap"

// Queue is a priority queue of boxes that pops the largest volume first.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	boxes boxHeap
}

// Push adds b to the queue.
func (q *Queue) Push(b Box) {
	heap.Push(&q.boxes, b)
}

// Pop removes and returns the box with the largest volume. It panics if the
// queue is empty.
func (q *Queue) Pop() Box {
	return heap.Pop(&q.boxes).(Box)
}

// Len returns the number of queued boxes.
func (q *Queue) Len() int {
	return len(q.boxes)
}

type boxHeap []Box

func (h boxHeap) Len() int           { return len(h) }
func (h boxHeap) Less(i, j int) bool { return h[i].volume > h[j].volume }
func (h boxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *boxHeap) Push(x any) {
	*h = append(*h, x.(Box))
}

func (h *boxHeap) Pop() any {
	old := *h
	n := len(old)
	b := old[n-1]
	*h = old[:n-1]
	return b
}
