// Package deviceinfo implements the DeviceInfo capability.
//
// Core holds no state of its own: every read is delegated to a PropertySource
// and its errors are returned unchanged.
package deviceinfo

import (
	"go.uber.org/zap"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// PropertySource reads device properties from the operating system
type PropertySource interface {
	DeviceName() (string, error)
	SystemVersion() (string, error)
	BundleID() (string, error)
	DeviceModel() (string, error)
}

// Core exposes a PropertySource as the DeviceInfo capability
type Core struct {
	source PropertySource
	log    *zap.Logger
}

var _ capability.DeviceInfo = (*Core)(nil)

// NewCore creates a device info core
func NewCore(source PropertySource, log *zap.Logger) *Core {
	if log == nil {
		log = zap.NewNop()
	}
	return &Core{source: source, log: log.Named("DeviceInfoCore")}
}

// DeviceName returns the user-visible device name
func (c *Core) DeviceName() (string, error) {
	return c.source.DeviceName()
}

// SystemVersion returns the OS version
func (c *Core) SystemVersion() (string, error) {
	return c.source.SystemVersion()
}

// BundleID returns the application bundle identifier
func (c *Core) BundleID() (string, error) {
	return c.source.BundleID()
}

// DeviceModel returns the hardware model
func (c *Core) DeviceModel() (string, error) {
	model, err := c.source.DeviceModel()
	if err != nil {
		return "", err
	}
	c.log.Debug("getDeviceModel", zap.String("model", model))
	return model, nil
}
