package deviceinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// DefaultOSReleasePath is the freedesktop os-release location
const DefaultOSReleasePath = "/etc/os-release"

// HostSource reads device properties from the machine the process runs on
type HostSource struct {
	bundleID      string
	osReleasePath string
	hostname      func() (string, error)
	goos          string
	goarch        string
}

var _ PropertySource = (*HostSource)(nil)

// NewHostSource creates a source reporting bundleID as the bundle identifier
func NewHostSource(bundleID, osReleasePath string) *HostSource {
	if osReleasePath == "" {
		osReleasePath = DefaultOSReleasePath
	}
	return &HostSource{
		bundleID:      bundleID,
		osReleasePath: osReleasePath,
		hostname:      os.Hostname,
		goos:          runtime.GOOS,
		goarch:        runtime.GOARCH,
	}
}

// DeviceName returns the host name
func (h *HostSource) DeviceName() (string, error) {
	name, err := h.hostname()
	if err != nil {
		return "", fmt.Errorf("device name: %w", err)
	}
	return name, nil
}

// SystemVersion returns VERSION_ID (or VERSION) from os-release
func (h *HostSource) SystemVersion() (string, error) {
	data, err := os.ReadFile(h.osReleasePath)
	if err != nil {
		return "", fmt.Errorf("system version: %w", err)
	}

	fields := parseOSRelease(data)
	if v := fields["VERSION_ID"]; v != "" {
		return v, nil
	}
	if v := fields["VERSION"]; v != "" {
		return v, nil
	}
	return "", fmt.Errorf("system version: no VERSION_ID in %s", h.osReleasePath)
}

// BundleID returns the configured bundle identifier
func (h *HostSource) BundleID() (string, error) {
	return h.bundleID, nil
}

// DeviceModel returns "<os> <arch>"
func (h *HostSource) DeviceModel() (string, error) {
	return h.goos + " " + h.goarch, nil
}

func parseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}
