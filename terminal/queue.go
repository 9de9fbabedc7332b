package terminal

import (
	"github.com/emirpasic/gods/queues/circularbuffer"
	"go.uber.org/zap"
)

// DefaultQueueSize bounds the pending event queue
const DefaultQueueSize = 512

// eventQueue is a bounded FIFO of decoded events
// A push into a full queue drops the new event instead of overwriting the oldest
type eventQueue struct {
	buf     *circularbuffer.Queue
	log     *zap.Logger
	dropped int
}

func newEventQueue(size int, log *zap.Logger) *eventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &eventQueue{buf: circularbuffer.New(size), log: log}
}

// push appends ev, reporting false when the queue is full
func (q *eventQueue) push(ev Event) bool {
	if q.buf.Full() {
		q.dropped++
		q.log.Debug("event queue full, dropping event",
			zap.Stringer("event", ev),
			zap.Int("dropped", q.dropped))
		return false
	}
	q.buf.Enqueue(ev)
	return true
}

// pop removes the oldest event
func (q *eventQueue) pop() (Event, bool) {
	v, ok := q.buf.Dequeue()
	if !ok {
		return Event{}, false
	}
	return v.(Event), true
}

func (q *eventQueue) empty() bool {
	return q.buf.Empty()
}

func (q *eventQueue) len() int {
	return q.buf.Size()
}
