// Package states provides the built-in game states: the client main menu
// and the dedicated server main state.
package states
