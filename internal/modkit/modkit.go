// Package modkit provides module wiring and core deps
package modkit

import (
	"fmt"

	phttp "mealboard/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)

	// Ports returns a module specific port set for cross-module wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// PortsOf extracts a module's ports as T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf extracts a module's ports as T or panics with a wiring error
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %q does not expose ports of type %T", m.Name(), p))
	}
	return p
}
