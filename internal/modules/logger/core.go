// Package logger implements the Logger capability.
//
// Core owns the call counter. Every log call, whatever its severity, bumps the
// counter by exactly one and is forwarded to zap; the most recent entries are
// kept in a bounded ring buffer for the bridge.
package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// DefaultHistory is the number of entries kept by NewCore
const DefaultHistory = 1000

// Core owns the logger state
type Core struct {
	mu      sync.Mutex
	count   int
	history *RingBuffer
	log     *zap.Logger
	now     func() time.Time
}

var _ capability.Logger = (*Core)(nil)

// NewCore creates a logger core writing through log. A nil log discards output.
func NewCore(log *zap.Logger) *Core {
	return NewCoreWithHistory(log, DefaultHistory)
}

// NewCoreWithHistory creates a logger core keeping up to history entries
func NewCoreWithHistory(log *zap.Logger, history int) *Core {
	if log == nil {
		log = zap.NewNop()
	}
	return &Core{
		history: NewRingBuffer(history),
		log:     log.Named("ExpoLoggerCore"),
		now:     time.Now,
	}
}

// LogInfo logs at info level
func (c *Core) LogInfo(message string) {
	c.log.Info(message)
	c.record(LevelInfo, message)
}

// LogWarning logs at warning level
func (c *Core) LogWarning(message string) {
	c.log.Warn(message)
	c.record(LevelWarning, message)
}

// LogError logs at error level
func (c *Core) LogError(message string) {
	c.log.Error(message)
	c.record(LevelError, message)
}

// Count returns the number of log calls since the last reset
func (c *Core) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// ResetCount sets the counter to zero. History is kept.
func (c *Core) ResetCount() {
	c.mu.Lock()
	c.count = 0
	c.mu.Unlock()
}

// Recent returns up to limit entries, newest first. An empty level matches all.
func (c *Core) Recent(limit int, level Level) []Entry {
	return c.history.Recent(limit, level)
}

func (c *Core) record(level Level, message string) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()

	c.history.Add(Entry{
		Timestamp: c.now(),
		Level:     level,
		Message:   message,
	})
}
