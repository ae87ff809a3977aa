package event

// QueueSize is the ring capacity, must be a power of two
// A tick emits at most four events, so overflow needs many undrained ticks
const (
	QueueSize  = 64
	bufferMask = QueueSize - 1
)

// Queue is a single-owner ring buffer for game events
// Not safe for concurrent use: the engine pushes and the driver consumes on one goroutine
//
// Overflow: oldest events overwritten when full
type Queue struct {
	events [QueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest unread one when full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&bufferMask] = ev
	q.tail++
	if q.tail-q.head > QueueSize {
		q.head = q.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		idx := i & bufferMask
		result = append(result, q.events[idx])
		q.events[idx] = GameEvent{}
	}
	q.head = q.tail
	return result
}

// Len returns pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
