// Package webview implements the Integrations capability.
//
// Integrations is the host-side facade a web view talks to. It owns no state
// and reaches every peer (logger, calculator, device info) through the interop
// registry at call time, so it compiles against capability interfaces only.
package webview

import (
	"fmt"

	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/interop"
)

// Integrations routes web view requests to peer capabilities
type Integrations struct {
	registry *interop.Registry
}

var _ capability.Integrations = (*Integrations)(nil)

// New creates integrations resolving peers from registry
func New(registry *interop.Registry) *Integrations {
	return &Integrations{registry: registry}
}

// LoggerCount returns the logger's call count
func (i *Integrations) LoggerCount() (int, error) {
	logger, err := capability.LoggerKey.Resolve(i.registry)
	if err != nil {
		return 0, err
	}
	return logger.Count(), nil
}

// PerformCalculation adds a and b on the calculator
func (i *Integrations) PerformCalculation(a, b float64) (float64, error) {
	calc, err := capability.CalculatorKey.Resolve(i.registry)
	if err != nil {
		return 0, err
	}
	return calc.Add(a, b), nil
}

// DeviceModel returns the device model
func (i *Integrations) DeviceModel() (string, error) {
	info, err := capability.DeviceInfoKey.Resolve(i.registry)
	if err != nil {
		return "", err
	}
	return info.DeviceModel()
}

// LogEvent records a tracking event through the logger
func (i *Integrations) LogEvent(name string) error {
	logger, err := capability.LoggerKey.Resolve(i.registry)
	if err != nil {
		return err
	}
	logger.LogInfo(fmt.Sprintf("[WebViewIntegrations] event: %s", name))
	return nil
}
