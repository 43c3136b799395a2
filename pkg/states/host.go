package states

import "github.com/drossy/stars/pkg/gui"

// Host is the application surface the built-in states drive.
type Host interface {
	gui.Navigator
	Available() []string
	Stop()
}
