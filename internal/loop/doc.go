// Package loop drives the per-frame update of the orbital visualization.
//
// Each frame the [Loop] consults the cadence clock, conditionally advances
// the physics stepper and samples trails, pushes converted positions into
// scene nodes, and invokes the renderer:
//
//   - [Stepper]: black-box physics over a fixed set of bodies
//   - [Binding]: body ↔ scene node ↔ trail association
//   - [Loop.Frame]: one synchronous frame
//   - [Loop.Run]: ticker-driven frames with context cancellation
//
// # Thread Safety
//
// A Loop is single-threaded. All mutation happens inside Frame on the
// caller's goroutine; drive it from exactly one place.
package loop
