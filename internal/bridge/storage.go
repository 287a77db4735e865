package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/interop"
)

// StorageModule exposes the Storage capability as ExpoStorage
type StorageModule struct {
	store capability.Storage
	peers *interop.Registry
}

// NewStorageModule creates the ExpoStorage adapter. Writes are reported to the
// Logger capability resolved from peers.
func NewStorageModule(store capability.Storage, peers *interop.Registry) *StorageModule {
	return &StorageModule{store: store, peers: peers}
}

// Definition returns module metadata
func (m *StorageModule) Definition() Definition {
	key := Parameter{Name: "key", Type: "string", Description: "Storage key", Required: true}
	return Definition{
		Name:        "ExpoStorage",
		Description: "String key-value storage",
		Capability:  capability.StorageName,
		Methods: []Method{
			{
				Name:        "setItem",
				Description: "Store a value by key",
				Parameters: []Parameter{
					key,
					{Name: "value", Type: "string", Description: "Value to store", Required: true},
				},
				Returns: "null",
			},
			{Name: "getItem", Description: "Value for key, or null", Parameters: []Parameter{key}, Returns: "string"},
			{Name: "removeItem", Description: "Delete a key", Parameters: []Parameter{key}, Returns: "null"},
			{Name: "getAllKeys", Description: "All stored keys", Parameters: noArgs(), Returns: "array"},
			{Name: "clear", Description: "Remove every key", Parameters: noArgs(), Returns: "null"},
		},
	}
}

// Invoke dispatches a method call
func (m *StorageModule) Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error) {
	switch method {
	case "setItem":
		return m.setItem(args)
	case "getItem":
		return m.getItem(args)
	case "removeItem":
		key, fail := requiredString(args, "key")
		if fail != nil {
			return fail, nil
		}
		if err := m.store.RemoveItem(key); err != nil {
			return failure(err.Error())
		}
		return success(nil)
	case "getAllKeys":
		return success(m.store.AllKeys())
	case "clear":
		if err := m.store.Clear(); err != nil {
			return failure(err.Error())
		}
		return success(nil)
	default:
		return unknownMethod("ExpoStorage", method)
	}
}

func (m *StorageModule) setItem(args map[string]interface{}) (*Result, error) {
	key, fail := requiredString(args, "key")
	if fail != nil {
		return fail, nil
	}
	value, fail := requiredString(args, "value")
	if fail != nil {
		return fail, nil
	}

	logger, err := capability.LoggerKey.Resolve(m.peers)
	if err != nil {
		res, _ := failure(err.Error())
		return res, err
	}

	if err := m.store.SetItem(key, value); err != nil {
		return failure(err.Error())
	}
	logger.LogInfo(fmt.Sprintf("wrote key=%s", key))
	return success(nil)
}

func (m *StorageModule) getItem(args map[string]interface{}) (*Result, error) {
	key, fail := requiredString(args, "key")
	if fail != nil {
		return fail, nil
	}

	value, err := m.store.GetItem(key)
	if errors.Is(err, capability.ErrNotFound) {
		return success(nil)
	}
	if err != nil {
		return failure(err.Error())
	}
	return success(value)
}
