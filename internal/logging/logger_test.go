package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, c := range cases {
		l := New(Config{Level: c.level})
		assert.Equal(t, c.want, l.GetLevel(), "level %q", c.level)
	}
}

func TestEngineAdapterForwards(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := EngineAdapter{L: l}

	adapter.Infof("ran %d trajectories", 3000)
	assert.Contains(t, buf.String(), "ran 3000 trajectories")
	assert.Contains(t, buf.String(), `"level":"info"`)

	buf.Reset()
	adapter.Debugf("seed %d", 42)
	assert.Contains(t, buf.String(), "seed 42")

	buf.Reset()
	adapter.Warnf("w")
	adapter.Errorf("e")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}
