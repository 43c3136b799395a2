/*
Package dsl provides a fluent builder for game states backed by plain functions.

It is meant for small states, tools and tests where writing a dedicated type
for domain.GameState would be noise.

Example usage:

	package main

	import (
		"context"

		"github.com/drossy/stars"
		"github.com/drossy/stars/pkg/domain"
		"github.com/drossy/stars/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Add("arena").
			OnLoad(func(ctx context.Context) error { return spawnPlayers(ctx) }).
			OnUpdate(func(ctx context.Context, tpf float64) { simulate(tpf) }).
			OnUnload(func(ctx context.Context) error { return despawn(ctx) })

		b.Add("lobby")

		app, err := stars.New(domain.SideServer, stars.WithStates(b.States()...))
		// ...
	}
*/
package dsl
