// Package interop provides the capability registry used for module-to-module calls.
//
// Feature modules bind their implementation under a capability name once at
// startup. Any other module resolves the name and calls the returned handle
// directly through its declared interface, so no module ever imports another
// module's concrete type.
//
// Components:
//   - Registry: name -> implementation directory guarded by a single RWMutex
//   - Key: typed capability handle (name + interface type)
//   - Default: lazily created process-wide registry
//
// Policies:
//   - Last-write-wins on re-registration (overwrite is logged)
//   - Strict mode rejects re-registration with ErrDuplicateRegistration
//   - A lookup miss is a wiring bug; use Validate at startup or the Must* helpers
//
// Example Usage:
//
//	var LoggerKey = interop.NewKey[Logger]("logger")
//
//	reg := interop.New(interop.WithStrict(true))
//	if err := interop.Provide(reg, LoggerKey, loggerCore); err != nil {
//		return err
//	}
//	logger, err := LoggerKey.Resolve(reg)
package interop
