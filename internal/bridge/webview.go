package bridge

import (
	"context"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// IntegrationsModule exposes the Integrations capability as WebViewIntegrations
type IntegrationsModule struct {
	integrations capability.Integrations
}

// NewIntegrationsModule creates the WebViewIntegrations adapter
func NewIntegrationsModule(integrations capability.Integrations) *IntegrationsModule {
	return &IntegrationsModule{integrations: integrations}
}

// Definition returns module metadata
func (m *IntegrationsModule) Definition() Definition {
	return Definition{
		Name:        "WebViewIntegrations",
		Description: "Web view access to logger, calculator and device info",
		Capability:  capability.IntegrationsName,
		Methods: []Method{
			{Name: "getLoggerCount", Description: "Logger call count", Parameters: noArgs(), Returns: "number"},
			{
				Name:        "performCalculation",
				Description: "Add a and b on the calculator",
				Parameters: []Parameter{
					{Name: "a", Type: "number", Description: "First operand", Required: true},
					{Name: "b", Type: "number", Description: "Second operand", Required: true},
				},
				Returns: "number",
			},
			{Name: "getDeviceModel", Description: "Hardware model", Parameters: noArgs(), Returns: "string"},
			{
				Name:        "logEvent",
				Description: "Record a tracking event",
				Parameters: []Parameter{
					{Name: "eventName", Type: "string", Description: "Event name", Required: true},
				},
				Returns: "null",
			},
		},
	}
}

// Invoke dispatches a method call
func (m *IntegrationsModule) Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error) {
	switch method {
	case "getLoggerCount":
		count, err := m.integrations.LoggerCount()
		if err != nil {
			return failure(err.Error())
		}
		return success(count)
	case "performCalculation":
		a, fail := requiredNumber(args, "a")
		if fail != nil {
			return fail, nil
		}
		b, fail := requiredNumber(args, "b")
		if fail != nil {
			return fail, nil
		}
		result, err := m.integrations.PerformCalculation(a, b)
		if err != nil {
			return failure(err.Error())
		}
		return success(result)
	case "getDeviceModel":
		model, err := m.integrations.DeviceModel()
		if err != nil {
			return failure(err.Error())
		}
		return success(model)
	case "logEvent":
		name, fail := requiredString(args, "eventName")
		if fail != nil {
			return fail, nil
		}
		if err := m.integrations.LogEvent(name); err != nil {
			return failure(err.Error())
		}
		return success(nil)
	default:
		return unknownMethod("WebViewIntegrations", method)
	}
}
