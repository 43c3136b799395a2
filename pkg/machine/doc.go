/*
Package machine implements the transition core of the state manager.

A Machine owns a registry of game states and a single current-state pointer.
TransferTo unloads the current state, loads the requested one and publishes
it as current, in that order, under one lock:

	m := machine.New()
	if err := m.RegisterState(menu); err != nil {
		return err
	}
	if err := m.TransferTo(ctx, menu.Name()); err != nil {
		return err
	}

Current may be called from any goroutine and never observes a half-written
pointer. Lifecycle failures are not retried and not rolled back; see
TransferTo for the exact outcome of each failure.
*/
package machine
