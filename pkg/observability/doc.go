/*
Package observability provides tools for monitoring the game state manager.

Metrics turns machine lifecycle events into Prometheus collectors, and
ChainHooks fans one set of lifecycle events out to several consumers
(metrics, logging, tests).
*/
package observability
