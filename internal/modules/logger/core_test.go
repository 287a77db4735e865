package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCountTracksEveryCall(t *testing.T) {
	tests := []struct {
		name  string
		calls []Level
	}{
		{name: "no calls", calls: nil},
		{name: "info only", calls: []Level{LevelInfo, LevelInfo}},
		{name: "mixed severities", calls: []Level{LevelInfo, LevelWarning, LevelError, LevelWarning}},
		{name: "errors only", calls: []Level{LevelError, LevelError, LevelError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := NewCore(nil)
			for _, level := range tt.calls {
				switch level {
				case LevelInfo:
					core.LogInfo("msg")
				case LevelWarning:
					core.LogWarning("msg")
				case LevelError:
					core.LogError("msg")
				}
			}
			assert.Equal(t, len(tt.calls), core.Count())
		})
	}
}

func TestResetCount(t *testing.T) {
	core := NewCore(nil)
	core.LogInfo("a")
	core.LogError("b")
	require.Equal(t, 2, core.Count())

	core.ResetCount()
	assert.Equal(t, 0, core.Count())

	core.LogWarning("c")
	assert.Equal(t, 1, core.Count())

	// history survives a reset
	assert.Len(t, core.Recent(0, ""), 3)
}

func TestForwardsToZapAtMatchingLevel(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	core := NewCore(zap.New(obsCore))

	core.LogInfo("started")
	core.LogWarning("slow")
	core.LogError("failed")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "started", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "ExpoLoggerCore", entries[2].LoggerName)
}

func TestRecent(t *testing.T) {
	core := NewCoreWithHistory(nil, 3)
	core.LogInfo("one")
	core.LogError("two")
	core.LogInfo("three")
	core.LogInfo("four")

	recent := core.Recent(10, "")
	require.Len(t, recent, 3)
	assert.Equal(t, "four", recent[0].Message)
	assert.Equal(t, "two", recent[2].Message)

	errorsOnly := core.Recent(10, LevelError)
	require.Len(t, errorsOnly, 1)
	assert.Equal(t, "two", errorsOnly[0].Message)

	assert.Len(t, core.Recent(2, ""), 2)
	assert.Equal(t, 4, core.Count())
}

func TestConcurrentLogging(t *testing.T) {
	core := NewCore(nil)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				core.LogInfo("tick")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, core.Count())
}

func TestRingBufferReset(t *testing.T) {
	buf := NewRingBuffer(0)
	buf.Add(Entry{Message: "a"})
	buf.Add(Entry{Message: "b"})
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, "b", buf.Recent(0, "")[0].Message)

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.Empty(t, buf.Recent(5, ""))
}
