package deviceinfo

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) DeviceName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockSource) SystemVersion() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockSource) BundleID() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockSource) DeviceModel() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func TestCoreDelegates(t *testing.T) {
	src := new(mockSource)
	src.On("DeviceName").Return("Ada's Phone", nil)
	src.On("SystemVersion").Return("17.2", nil)
	src.On("BundleID").Return("com.example.app", nil)
	src.On("DeviceModel").Return("Google Pixel 8", nil)

	core := NewCore(src, nil)

	name, err := core.DeviceName()
	require.NoError(t, err)
	assert.Equal(t, "Ada's Phone", name)

	version, err := core.SystemVersion()
	require.NoError(t, err)
	assert.Equal(t, "17.2", version)

	bundle, err := core.BundleID()
	require.NoError(t, err)
	assert.Equal(t, "com.example.app", bundle)

	model, err := core.DeviceModel()
	require.NoError(t, err)
	assert.Equal(t, "Google Pixel 8", model)

	src.AssertExpectations(t)
}

func TestCorePropagatesErrorsUnchanged(t *testing.T) {
	readFailed := errors.New("property unavailable")

	src := new(mockSource)
	src.On("DeviceName").Return("", readFailed)
	src.On("SystemVersion").Return("", readFailed)
	src.On("BundleID").Return("", readFailed)
	src.On("DeviceModel").Return("", readFailed)

	core := NewCore(src, nil)

	calls := map[string]func() (string, error){
		"DeviceName":    core.DeviceName,
		"SystemVersion": core.SystemVersion,
		"BundleID":      core.BundleID,
		"DeviceModel":   core.DeviceModel,
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			_, err := call()
			assert.Same(t, readFailed, err)
		})
	}
}

func TestHostSource(t *testing.T) {
	dir := t.TempDir()
	release := filepath.Join(dir, "os-release")
	require.NoError(t, os.WriteFile(release, []byte(`# comment
NAME="Ubuntu"
VERSION="22.04.3 LTS (Jammy Jellyfish)"
VERSION_ID="22.04"
`), 0o644))

	src := NewHostSource("com.newarchspike", release)

	version, err := src.SystemVersion()
	require.NoError(t, err)
	assert.Equal(t, "22.04", version)

	bundle, err := src.BundleID()
	require.NoError(t, err)
	assert.Equal(t, "com.newarchspike", bundle)

	model, err := src.DeviceModel()
	require.NoError(t, err)
	assert.Equal(t, runtime.GOOS+" "+runtime.GOARCH, model)

	src.hostname = func() (string, error) { return "devbox", nil }
	name, err := src.DeviceName()
	require.NoError(t, err)
	assert.Equal(t, "devbox", name)
}

func TestHostSourceSystemVersionErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewHostSource("x", filepath.Join(dir, "missing")).SystemVersion()
	assert.ErrorIs(t, err, os.ErrNotExist)

	release := filepath.Join(dir, "os-release")
	require.NoError(t, os.WriteFile(release, []byte("NAME=Plan9\n"), 0o644))
	_, err = NewHostSource("x", release).SystemVersion()
	assert.ErrorContains(t, err, "no VERSION_ID")
}

func TestHostSourceFallsBackToVersion(t *testing.T) {
	release := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(release, []byte("VERSION='rolling'\n"), 0o644))

	version, err := NewHostSource("x", release).SystemVersion()
	require.NoError(t, err)
	assert.Equal(t, "rolling", version)
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte("bundle_id: com.newarchspike\nname: NewArchSpike\nversion: 1.2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, "com.newarchspike", m.BundleID)
	assert.Equal(t, "NewArchSpike", m.Name)
	assert.Equal(t, "1.2.0", m.Version)

	_, err = ParseManifest([]byte("name: NoBundle\n"))
	assert.ErrorContains(t, err, "bundle_id is required")

	_, err = ParseManifest([]byte("bundle_id: [unterminated"))
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bundle_id: com.example\n"), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example", m.BundleID)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
