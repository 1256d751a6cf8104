// Package watch hot-reloads a binding config file into a running
// dispatch.Engine. Editing the watched file swaps the engine's
// registered bindings for the newly parsed set; a file that fails to
// parse leaves the previously registered bindings untouched, so a typo
// never takes the running binding set offline.
package watch
