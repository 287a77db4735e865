package bridge

import (
	"context"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// DeviceInfoModule exposes the DeviceInfo capability as CustomDeviceInfo
type DeviceInfoModule struct {
	info capability.DeviceInfo
}

// NewDeviceInfoModule creates the CustomDeviceInfo adapter
func NewDeviceInfoModule(info capability.DeviceInfo) *DeviceInfoModule {
	return &DeviceInfoModule{info: info}
}

// Definition returns module metadata
func (m *DeviceInfoModule) Definition() Definition {
	return Definition{
		Name:        "CustomDeviceInfo",
		Description: "Read-only device properties",
		Capability:  capability.DeviceInfoName,
		Methods: []Method{
			{Name: "getDeviceName", Description: "Device name", Parameters: noArgs(), Returns: "string"},
			{Name: "getSystemVersion", Description: "Operating system version", Parameters: noArgs(), Returns: "string"},
			{Name: "getBundleId", Description: "Application bundle identifier", Parameters: noArgs(), Returns: "string"},
			{Name: "getDeviceModel", Description: "Hardware model", Parameters: noArgs(), Returns: "string"},
		},
	}
}

// Invoke dispatches a method call
func (m *DeviceInfoModule) Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error) {
	var read func() (string, error)
	switch method {
	case "getDeviceName":
		read = m.info.DeviceName
	case "getSystemVersion":
		read = m.info.SystemVersion
	case "getBundleId":
		read = m.info.BundleID
	case "getDeviceModel":
		read = m.info.DeviceModel
	default:
		return unknownMethod("CustomDeviceInfo", method)
	}

	value, err := read()
	if err != nil {
		return failure(err.Error())
	}
	return success(value)
}
