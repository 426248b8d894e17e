package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithLogger_TagsComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := &Store{}
	WithLogger(zerolog.New(&buf))(s)

	s.Log.Info().Str("backend", BackendMemory).Msg("objects ready")
	out := buf.String()
	if !strings.Contains(out, `"component":"store"`) || !strings.Contains(out, `"backend":"memory"`) {
		t.Fatalf("log line = %s", out)
	}
}
