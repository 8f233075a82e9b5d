// Package conformance is the trace validation engine: a pattern-driven event
// grammar, a presence-based trace scanner, a sequence/consistency checker,
// and a deterministic report emitter.
//
// The engine is a pure batch transformation from trace text to report. It
// performs no I/O beyond writing the rendered report, holds no state between
// runs, and may be executed concurrently across scenarios since grammars are
// immutable after registration.
package conformance
