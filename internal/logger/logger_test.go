package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLoggerCaptures(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info %s", "msg")
	l.Warn("warn")
	l.Error("error")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "debug 1", l.Messages[0].Message)
	assert.Equal(t, "info msg", l.Messages[1].Message)
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()

	// Must not panic; output is discarded.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("routed")

	assert.Len(t, buf.Messages, 1)
	assert.Equal(t, "routed", buf.Messages[0].Message)
}
