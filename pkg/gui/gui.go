// Package gui holds the text-mode screens shown by client-side game states.
package gui

import "context"

// Screen is a named view that can be displayed and rebuilt when its
// content changes.
type Screen interface {
	Name() string
	// Show displays the screen, hiding whichever screen was active.
	Show(ctx context.Context) error
	// Rebuild refreshes the screen content.
	Rebuild() error
}

// Button is a pressable entry on a screen.
type Button struct {
	Name    string
	Caption string
	Apply   func(ctx context.Context)
}

// Navigator is the part of the application a screen drives.
type Navigator interface {
	CurrentName() string
	RequestTransfer(name string)
}
