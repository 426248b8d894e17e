package logger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StartRun tags ctx with a fresh run id for stage and returns it
func StartRun(ctx context.Context, stage string) (context.Context, string) {
	id := uuid.NewString()
	return WithRun(ctx, id, stage), id
}

// Trail collects the per item diagnostics a run hands back to its caller
// every line is also logged at warn level
type Trail struct {
	log   *Logger
	lines []string
}

// NewTrail builds a Trail that logs through l, nil means the ctx free root logger
func NewTrail(l *Logger) *Trail {
	if l == nil {
		l = Get()
	}
	return &Trail{log: l, lines: []string{}}
}

// Warnf records a diagnostic about username, err is attached to the log entry when set
func (t *Trail) Warnf(username string, err error, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	ev := t.log.Warn().Str("username", username)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
	t.lines = append(t.lines, msg)
}

// Lines returns the recorded diagnostics in order, never nil
func (t *Trail) Lines() []string { return append([]string{}, t.lines...) }
