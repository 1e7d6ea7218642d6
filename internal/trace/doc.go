// Package trace provides lightweight tracing for the jskw scanner.
//
// Enable tracing via command-line flags:
//
//	jskw scan --trace=- --trace-level=file ./src
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelPhase: Driver boundaries (discover, load, scan)
//   - LevelFile: Per-file classification
//   - LevelDebug: Everything including per-word matcher decisions
//
// # Context Propagation
//
// Tracers travel through the driver via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeFile, "classify", parentID)
//	defer span.End("")
package trace
