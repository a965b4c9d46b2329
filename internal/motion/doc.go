// Package motion advances the atoms of a scene by one animation frame.
//
// Each frame applies, per atom and in this order:
//
//   - random drift on both velocity components
//   - a per-axis speed clamp
//   - explicit Euler integration of position
//   - cursor repulsion with a quadratic falloff plus a small jitter
//   - elastic reflection off the padded bounds
//
// Reflection runs last so it sees the post-repulsion position and can cancel
// outward velocity at a wall in the same frame.
//
// # Example
//
//	eng := motion.New(motion.DefaultTuning(), rand.New(rand.NewSource(1)))
//	eng.Step(registry.All(), b, motion.Cursor{}, 1.0/60)
//
// The engine has no clock of its own: hosts call Step with the elapsed time
// and the engine caps it at Tuning.MaxDt.
package motion
