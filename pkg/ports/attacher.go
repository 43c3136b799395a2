package ports

import "github.com/drossy/stars/pkg/domain"

// StateAttacher is the engine collaborator a state hooks itself into while
// loaded (scene graph, input, GUI viewport). Attach and Detach report
// whether anything changed.
type StateAttacher interface {
	Attach(state domain.GameState) bool
	Detach(state domain.GameState) bool
	IsAttached(state domain.GameState) bool
}
