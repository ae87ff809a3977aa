package event

import "github.com/lixenwraith/hoopshot/physics"

// EmitBounce queues an audible contact
func EmitBounce(q *Queue, c physics.Contact, frame int64) {
	q.Push(GameEvent{
		Type:    EventBounce,
		Payload: &BouncePayload{Surface: c.Surface, Speed: c.Speed},
		Frame:   frame,
	})
}

// EmitScore queues a made basket with the updated counters
func EmitScore(q *Queue, score, attempts int, frame int64) {
	q.Push(GameEvent{
		Type:    EventScore,
		Payload: &ScorePayload{Score: score, Attempts: attempts},
		Frame:   frame,
	})
}

// EmitMatchEnd queues the end-of-match pair: Buzzer first on time-up, then MatchEnded
func EmitMatchEnd(q *Queue, score, attempts int, reason EndReason, frame int64) {
	if reason == EndTimeUp {
		q.Push(GameEvent{Type: EventBuzzer, Frame: frame})
	}
	q.Push(GameEvent{
		Type:    EventMatchEnded,
		Payload: &MatchEndedPayload{FinalScore: score, Attempts: attempts, Reason: reason},
		Frame:   frame,
	})
}

// Sink receives drained events; implementations must not block and must swallow their own failures
type Sink interface {
	Notify(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Notify(ev GameEvent) { f(ev) }

// Dispatch hands every event to every sink in order
func Dispatch(events []GameEvent, sinks ...Sink) {
	for _, ev := range events {
		for _, s := range sinks {
			if s != nil {
				s.Notify(ev)
			}
		}
	}
}
