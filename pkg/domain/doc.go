/*
Package domain contains the core types of the Drossy Stars state manager.

It defines what a game state is, how the running side is classified, the
errors the registry and machine report, and the lifecycle events emitted
around transitions. The package is kept free of I/O and engine code so the
registry and machine can be tested with fake states.

# Key Entities

  - GameState: a named, mutually-exclusive mode of the application with Load and Unload hooks.
  - Side: whether the process runs as a dedicated server or as a client.
  - LifecycleHooks: callbacks observing registration, load, unload and transitions.
*/
package domain
