/*
Package ports defines the driven ports (interfaces) of the Drossy Stars core.

These interfaces decouple the state manager from the engine and from storage,
so states and applications can run headless in tests.

# Key Interfaces

  - StateAttacher: the engine's app-state manager that states attach to while loaded.
  - StateStore: remembers the last active state of an application across restarts.
*/
package ports
