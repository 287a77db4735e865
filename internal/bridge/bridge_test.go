package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/interop"
	"github.com/versten1uk/new-arch-spike/internal/modules/calculator"
	"github.com/versten1uk/new-arch-spike/internal/modules/logger"
	"github.com/versten1uk/new-arch-spike/internal/modules/storage"
	"github.com/versten1uk/new-arch-spike/internal/modules/webview"
)

type staticDevice struct {
	err error
}

func (d staticDevice) DeviceName() (string, error)    { return "test-host", d.err }
func (d staticDevice) SystemVersion() (string, error) { return "1.0", d.err }
func (d staticDevice) BundleID() (string, error)      { return "com.example.spike", d.err }
func (d staticDevice) DeviceModel() (string, error)   { return "linux amd64", d.err }

type call struct {
	module, method, status string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeRecorder) RecordBridgeCall(module, method, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{module, method, status})
}

type fixture struct {
	peers    *interop.Registry
	bridge   *Registry
	logger   *logger.Core
	recorder *fakeRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	peers := interop.New(interop.WithStrict(true))
	log := logger.NewCore(nil)
	store := storage.NewCore()
	calc := calculator.NewCore()
	device := staticDevice{}
	integrations := webview.New(peers)

	require.NoError(t, interop.Provide(peers, capability.LoggerKey, capability.Logger(log)))
	require.NoError(t, interop.Provide(peers, capability.StorageKey, capability.Storage(store)))
	require.NoError(t, interop.Provide(peers, capability.CalculatorKey, capability.Calculator(calc)))
	require.NoError(t, interop.Provide(peers, capability.DeviceInfoKey, capability.DeviceInfo(device)))
	require.NoError(t, interop.Provide(peers, capability.IntegrationsKey, capability.Integrations(integrations)))

	recorder := &fakeRecorder{}
	reg := NewRegistry(recorder)
	require.NoError(t, reg.Register(NewLoggerModule(log)))
	require.NoError(t, reg.Register(NewStorageModule(store, peers)))
	require.NoError(t, reg.Register(NewDeviceInfoModule(device)))
	require.NoError(t, reg.Register(NewCalculatorModule(calc, peers)))
	require.NoError(t, reg.Register(NewIntegrationsModule(integrations)))

	return &fixture{peers: peers, bridge: reg, logger: log, recorder: recorder}
}

func (f *fixture) invoke(t *testing.T, target string, args map[string]interface{}) *Result {
	t.Helper()
	res, err := f.bridge.Invoke(context.Background(), target, args)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestRegistryList(t *testing.T) {
	f := newFixture(t)

	defs := f.bridge.List()
	require.Len(t, defs, 5)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{
		"CustomDeviceInfo",
		"ExpoLogger",
		"ExpoStorage",
		"TurboCalculator",
		"WebViewIntegrations",
	}, names)

	stats := f.bridge.Stats()
	assert.Equal(t, 5, stats["total_modules"])
	assert.Equal(t, 25, stats["total_methods"])
}

func TestStorageWriteIsCountedByLogger(t *testing.T) {
	f := newFixture(t)

	res := f.invoke(t, "ExpoLogger.resetLogCount", nil)
	assert.True(t, res.Success)

	res = f.invoke(t, "ExpoStorage.setItem", map[string]interface{}{"key": "k", "value": "v"})
	assert.True(t, res.Success)

	res = f.invoke(t, "ExpoLogger.getLogCount", nil)
	assert.Equal(t, 1, res.Value)

	res = f.invoke(t, "ExpoStorage.getItem", map[string]interface{}{"key": "k"})
	assert.Equal(t, "v", res.Value)

	entries := f.logger.Recent(1, "")
	require.Len(t, entries, 1)
	assert.Equal(t, "wrote key=k", entries[0].Message)
}

func TestStorageGetMissingIsNull(t *testing.T) {
	f := newFixture(t)

	res := f.invoke(t, "ExpoStorage.getItem", map[string]interface{}{"key": "missing"})
	assert.True(t, res.Success)
	assert.Nil(t, res.Value)
}

func TestStorageKeysAndClear(t *testing.T) {
	f := newFixture(t)

	f.invoke(t, "ExpoStorage.setItem", map[string]interface{}{"key": "b", "value": "2"})
	f.invoke(t, "ExpoStorage.setItem", map[string]interface{}{"key": "a", "value": "1"})

	res := f.invoke(t, "ExpoStorage.getAllKeys", nil)
	assert.Equal(t, []string{"a", "b"}, res.Value)

	f.invoke(t, "ExpoStorage.removeItem", map[string]interface{}{"key": "a"})
	res = f.invoke(t, "ExpoStorage.getAllKeys", nil)
	assert.Equal(t, []string{"b"}, res.Value)

	f.invoke(t, "ExpoStorage.clear", nil)
	res = f.invoke(t, "ExpoStorage.getAllKeys", nil)
	assert.Empty(t, res.Value)
}

func TestStorageSetWithoutLogger(t *testing.T) {
	f := newFixture(t)
	f.peers.Unregister(capability.LoggerName)

	res, err := f.bridge.Call(context.Background(), "ExpoStorage", "setItem", map[string]interface{}{"key": "k", "value": "v"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, capability.ErrNotFound))
	assert.False(t, res.Success)

	res = f.invoke(t, "ExpoStorage.getItem", map[string]interface{}{"key": "k"})
	assert.Nil(t, res.Value)
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		name   string
		target string
		args   map[string]interface{}
		want   interface{}
		ok     bool
	}{
		{"add", "TurboCalculator.add", map[string]interface{}{"a": 2.0, "b": 3.0}, 5.0, true},
		{"subtract", "TurboCalculator.subtract", map[string]interface{}{"a": 2.0, "b": 3.0}, -1.0, true},
		{"multiply", "TurboCalculator.multiply", map[string]interface{}{"a": 4.0, "b": 2.5}, 10.0, true},
		{"divide", "TurboCalculator.divide", map[string]interface{}{"a": 9.0, "b": 3.0}, 3.0, true},
		{"divide by zero", "TurboCalculator.divide", map[string]interface{}{"a": 1.0, "b": 0.0}, nil, false},
		{"sum", "TurboCalculator.sum", map[string]interface{}{"values": []interface{}{1.0, 2.0, 3.0}}, 6.0, true},
		{"mean", "TurboCalculator.mean", map[string]interface{}{"values": []interface{}{2.0, 4.0}}, 3.0, true},
		{"mean empty", "TurboCalculator.mean", map[string]interface{}{"values": []interface{}{}}, nil, false},
		{"missing operand", "TurboCalculator.add", map[string]interface{}{"a": 1.0}, nil, false},
		{"bad values", "TurboCalculator.sum", map[string]interface{}{"values": "nope"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.invoke(t, tt.target, tt.args)
			assert.Equal(t, tt.ok, res.Success)
			if tt.ok {
				assert.Equal(t, tt.want, res.Value)
			} else {
				assert.NotNil(t, res.Error)
			}
		})
	}
}

func TestCalculatorAddLogs(t *testing.T) {
	f := newFixture(t)

	f.invoke(t, "TurboCalculator.add", map[string]interface{}{"a": 1.0, "b": 2.0})
	f.invoke(t, "TurboCalculator.multiply", map[string]interface{}{"a": 1.0, "b": 2.0})

	assert.Equal(t, 1, f.logger.Count())
}

func TestDeviceInfo(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "test-host", f.invoke(t, "CustomDeviceInfo.getDeviceName", nil).Value)
	assert.Equal(t, "1.0", f.invoke(t, "CustomDeviceInfo.getSystemVersion", nil).Value)
	assert.Equal(t, "com.example.spike", f.invoke(t, "CustomDeviceInfo.getBundleId", nil).Value)
	assert.Equal(t, "linux amd64", f.invoke(t, "CustomDeviceInfo.getDeviceModel", nil).Value)
}

func TestDeviceInfoError(t *testing.T) {
	m := NewDeviceInfoModule(staticDevice{err: errors.New("unavailable")})

	res, err := m.Invoke(context.Background(), "getDeviceName", nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, "unavailable", *res.Error)
}

func TestIntegrations(t *testing.T) {
	f := newFixture(t)

	res := f.invoke(t, "WebViewIntegrations.performCalculation", map[string]interface{}{"a": 2.0, "b": 2.0})
	assert.Equal(t, 4.0, res.Value)

	res = f.invoke(t, "WebViewIntegrations.logEvent", map[string]interface{}{"eventName": "opened"})
	assert.True(t, res.Success)

	res = f.invoke(t, "WebViewIntegrations.getLoggerCount", nil)
	assert.Equal(t, f.logger.Count(), res.Value)

	res = f.invoke(t, "WebViewIntegrations.getDeviceModel", nil)
	assert.Equal(t, "linux amd64", res.Value)
}

func TestLoggerRecent(t *testing.T) {
	f := newFixture(t)

	f.invoke(t, "ExpoLogger.logInfo", map[string]interface{}{"message": "one"})
	f.invoke(t, "ExpoLogger.logError", map[string]interface{}{"message": "two"})
	f.invoke(t, "ExpoLogger.logWarning", map[string]interface{}{"message": "three"})

	res := f.invoke(t, "ExpoLogger.getRecentLogs", map[string]interface{}{"limit": 2.0})
	entries, ok := res.Value.([]logger.Entry)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "three", entries[0].Message)

	res = f.invoke(t, "ExpoLogger.getRecentLogs", map[string]interface{}{"level": "error"})
	entries = res.Value.([]logger.Entry)
	require.Len(t, entries, 1)
	assert.Equal(t, "two", entries[0].Message)
}

func TestInvokeErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bridge.Invoke(ctx, "no-dot", nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = f.bridge.Invoke(ctx, "Missing.method", nil)
	assert.ErrorIs(t, err, ErrModuleNotFound)

	res, err := f.bridge.Invoke(ctx, "ExpoLogger.nope", nil)
	assert.ErrorIs(t, err, ErrMethodNotFound)
	assert.False(t, res.Success)

	res = f.invoke(t, "ExpoLogger.logInfo", map[string]interface{}{})
	assert.False(t, res.Success)
	assert.Equal(t, "message parameter required", *res.Error)
}

func TestRecorderStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _ = f.bridge.Call(ctx, "TurboCalculator", "add", map[string]interface{}{"a": 1.0, "b": 1.0})
	_, _ = f.bridge.Call(ctx, "TurboCalculator", "divide", map[string]interface{}{"a": 1.0, "b": 0.0})
	_, _ = f.bridge.Call(ctx, "TurboCalculator", "nope", nil)

	assert.Equal(t, []call{
		{"TurboCalculator", "add", "success"},
		{"TurboCalculator", "divide", "failure"},
		{"TurboCalculator", "nope", "error"},
	}, f.recorder.calls)
}

func TestRegisterEmptyName(t *testing.T) {
	reg := NewRegistry(nil)
	err := reg.Register(emptyModule{})
	assert.Error(t, err)
}

type emptyModule struct{}

func (emptyModule) Definition() Definition { return Definition{} }
func (emptyModule) Invoke(context.Context, string, map[string]interface{}) (*Result, error) {
	return success(nil)
}
