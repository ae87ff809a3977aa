package session

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/hoopshot/event"
)

// LogSink writes every event to a logger at debug level
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{logger: l}
}

func (l *LogSink) Notify(ev event.GameEvent) {
	if l.logger == nil {
		return
	}
	switch p := ev.Payload.(type) {
	case *event.BouncePayload:
		l.logger.Debug("bounce", "frame", ev.Frame, "surface", p.Surface, "speed", p.Speed)
	case *event.ScorePayload:
		l.logger.Debug("score", "frame", ev.Frame, "score", p.Score, "attempts", p.Attempts)
	case *event.MatchEndedPayload:
		l.logger.Debug("match ended", "frame", ev.Frame, "score", p.FinalScore, "reason", p.Reason)
	default:
		l.logger.Debug(ev.Type.String(), "frame", ev.Frame)
	}
}
