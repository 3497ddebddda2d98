package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetupLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	l := SetupLogger("prod", "warn")
	assert.Same(t, l, Logger())
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l = SetupLogger("local", "not-a-level")
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestHelpersWriteToGlobal(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debug("d")
	Info("i", zap.String("k", "v"))
	Warn("w")
	Error("e")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, "i", entries[1].Message)
		assert.Equal(t, "v", entries[1].ContextMap()["k"])
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	}
}
