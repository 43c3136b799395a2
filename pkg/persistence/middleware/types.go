// Package middleware wraps a ports.StateStore with cross-cutting behaviour.
package middleware

import "github.com/drossy/stars/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore

// Chain applies mws so that the first one is the outermost wrapper.
func Chain(store ports.StateStore, mws ...Middleware) ports.StateStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
