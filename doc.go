/*
Package stars is the core of Drossy Stars: it owns the game state machine of
a running client or dedicated server.

An Application is built for one Side. It registers the built-in states for
that side (the main menu on a client, the main state on a server), moves to
the initial state on Start and then drives the machine from a single update
goroutine in Run.

# Game states

A game state is any value implementing domain.GameState. States are
registered by unique name and loaded only when the machine transfers to
them:

	app, err := stars.New(domain.SideServer, stars.WithStates(myState))
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Start(ctx); err != nil {
		log.Fatal(err)
	}
	go app.Run(ctx)

	// Safe from any goroutine; applied on the next tick.
	app.RequestTransfer("myState")

Only the update goroutine calls Machine.TransferTo while Run is active.
Other goroutines (HTTP handlers, GUI buttons, input readers) go through
RequestTransfer.
*/
package stars
