package bridge

import (
	"context"

	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/modules/logger"
)

// historyReader is implemented by loggers that keep recent entries
type historyReader interface {
	Recent(limit int, level logger.Level) []logger.Entry
}

// LoggerModule exposes the Logger capability as ExpoLogger
type LoggerModule struct {
	logger capability.Logger
}

// NewLoggerModule creates the ExpoLogger adapter
func NewLoggerModule(l capability.Logger) *LoggerModule {
	return &LoggerModule{logger: l}
}

// Definition returns module metadata
func (m *LoggerModule) Definition() Definition {
	message := []Parameter{
		{Name: "message", Type: "string", Description: "Log message", Required: true},
	}
	return Definition{
		Name:        "ExpoLogger",
		Description: "Counting logger",
		Capability:  capability.LoggerName,
		Methods: []Method{
			{Name: "logInfo", Description: "Log at info level", Parameters: message, Returns: "null"},
			{Name: "logWarning", Description: "Log at warning level", Parameters: message, Returns: "null"},
			{Name: "logError", Description: "Log at error level", Parameters: message, Returns: "null"},
			{Name: "getLogCount", Description: "Number of log calls since last reset", Parameters: noArgs(), Returns: "number"},
			{Name: "resetLogCount", Description: "Reset the log counter", Parameters: noArgs(), Returns: "null"},
			{
				Name:        "getRecentLogs",
				Description: "Most recent log entries, newest first",
				Parameters: []Parameter{
					{Name: "limit", Type: "number", Description: "Maximum entries", Required: false},
					{Name: "level", Type: "string", Description: "info, warning or error", Required: false},
				},
				Returns: "array",
			},
		},
	}
}

// Invoke dispatches a method call
func (m *LoggerModule) Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error) {
	switch method {
	case "logInfo", "logWarning", "logError":
		message, fail := requiredString(args, "message")
		if fail != nil {
			return fail, nil
		}
		switch method {
		case "logInfo":
			m.logger.LogInfo(message)
		case "logWarning":
			m.logger.LogWarning(message)
		default:
			m.logger.LogError(message)
		}
		return success(nil)
	case "getLogCount":
		return success(m.logger.Count())
	case "resetLogCount":
		m.logger.ResetCount()
		return success(nil)
	case "getRecentLogs":
		return m.recent(args)
	default:
		return unknownMethod("ExpoLogger", method)
	}
}

func (m *LoggerModule) recent(args map[string]interface{}) (*Result, error) {
	reader, ok := m.logger.(historyReader)
	if !ok {
		return failure("log history not available")
	}

	limit := 100
	if l, ok := getNumber(args, "limit"); ok && l > 0 {
		limit = int(l)
	}
	level, _ := getString(args, "level")

	return success(reader.Recent(limit, logger.Level(level)))
}
