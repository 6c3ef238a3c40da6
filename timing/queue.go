package timing

import "container/heap"

// eventQueue orders future events by due time. It is not safe for
// concurrent use; the engine serializes access under its own lock.
type eventQueue struct {
	events futureEventHeap
}

func newEventQueue() *eventQueue {
	q := &eventQueue{events: make(futureEventHeap, 0)}
	heap.Init(&q.events)
	return q
}

func (q *eventQueue) push(evt *FutureEvent) {
	heap.Push(&q.events, evt)
}

func (q *eventQueue) pop() *FutureEvent {
	if len(q.events) == 0 {
		return nil
	}
	return heap.Pop(&q.events).(*FutureEvent)
}

func (q *eventQueue) peek() *FutureEvent {
	if len(q.events) == 0 {
		return nil
	}
	return q.events[0]
}

func (q *eventQueue) len() int {
	return len(q.events)
}

type futureEventHeap []*FutureEvent

func (h futureEventHeap) Len() int { return len(h) }

func (h futureEventHeap) Less(i, j int) bool {
	return h[i].Time < h[j].Time
}

func (h futureEventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *futureEventHeap) Push(x any) {
	*h = append(*h, x.(*FutureEvent))
}

func (h *futureEventHeap) Pop() any {
	old := *h
	n := len(old)
	evt := old[n-1]
	*h = old[:n-1]
	return evt
}
