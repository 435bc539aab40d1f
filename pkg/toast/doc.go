// Package toast keeps the list of transient notifications shown to an agent.
//
// A Provider is created once at the application root and handed to request
// handlers through a context.Context. Each toast is removed automatically
// after its duration unless the duration is explicitly zero, and Remove or
// Close always cancel the pending timer.
package toast
