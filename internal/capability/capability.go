// Package capability declares the operation sets modules expose to each other.
//
// Only interfaces and typed keys live here. A module that needs a peer imports
// this package and the interop registry, never the peer's implementation.
package capability

import (
	"errors"

	"github.com/versten1uk/new-arch-spike/internal/interop"
)

// Capability names
const (
	LoggerName       = "logger"
	StorageName      = "storage"
	DeviceInfoName   = "deviceinfo"
	CalculatorName   = "calculator"
	IntegrationsName = "webview.integrations"
)

var (
	// ErrNotFound is shared with the registry so callers can use a single errors.Is check
	ErrNotFound = interop.ErrNotFound
	// ErrDivisionByZero is returned by Calculator.Divide
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyInput is returned by aggregate operations given no values
	ErrEmptyInput = errors.New("at least one value required")
)

// Logger counts every log call regardless of severity
type Logger interface {
	LogInfo(message string)
	LogWarning(message string)
	LogError(message string)
	Count() int
	ResetCount()
}

// Storage is a string key-value store
type Storage interface {
	SetItem(key, value string) error
	// GetItem returns ErrNotFound when key is absent
	GetItem(key string) (string, error)
	RemoveItem(key string) error
	AllKeys() []string
	Clear() error
}

// DeviceInfo exposes read-only device properties
type DeviceInfo interface {
	DeviceName() (string, error)
	SystemVersion() (string, error)
	BundleID() (string, error)
	DeviceModel() (string, error)
}

// Calculator performs arithmetic
type Calculator interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Divide(a, b float64) (float64, error)
	Sum(values []float64) (float64, error)
	Mean(values []float64) (float64, error)
}

// Integrations is the host-side facade a web view uses to reach other modules
type Integrations interface {
	LoggerCount() (int, error)
	PerformCalculation(a, b float64) (float64, error)
	DeviceModel() (string, error)
	LogEvent(name string) error
}

// Typed keys
var (
	LoggerKey       = interop.NewKey[Logger](LoggerName)
	StorageKey      = interop.NewKey[Storage](StorageName)
	DeviceInfoKey   = interop.NewKey[DeviceInfo](DeviceInfoName)
	CalculatorKey   = interop.NewKey[Calculator](CalculatorName)
	IntegrationsKey = interop.NewKey[Integrations](IntegrationsName)
)

// All returns every capability name a complete host binds
func All() []string {
	return []string{
		LoggerName,
		StorageName,
		DeviceInfoName,
		CalculatorName,
		IntegrationsName,
	}
}
