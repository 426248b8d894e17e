package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestStartRun_TagsContext(t *testing.T) {
	ctx, id := StartRun(context.Background(), "ranking")
	if id == "" || RunID(ctx) != id {
		t.Fatalf("run id = %q, ctx has %q", id, RunID(ctx))
	}
	_, other := StartRun(context.Background(), "ranking")
	if other == id {
		t.Fatal("run ids must be unique")
	}
}

func TestTrail_LogsAndCollects(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	tr := NewTrail(&l)

	if got := tr.Lines(); got == nil || len(got) != 0 {
		t.Fatalf("empty trail lines = %#v", got)
	}
	tr.Warnf("fit_al", errors.New("boom"), "error processing username %s", "fit_al")
	tr.Warnf("bob", nil, "missing follower count data for %s", "bob")

	lines := tr.Lines()
	if len(lines) != 2 || lines[0] != "error processing username fit_al" {
		t.Fatalf("lines = %v", lines)
	}
	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"username":"fit_al"`, `"error":"boom"`, `"username":"bob"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s: %s", want, out)
		}
	}
}
