// Package locf fills gaps in numeric sequences by carrying the last
// observation forward (LOCF).
//
// Every missing cell takes the value of the nearest present cell before it.
// Missing cells with nothing before them stay missing. Present cells are
// never changed and the output always has the input's length.
//
//	in:  [NA, 1, NA, NA, 4, NA]
//	out: [NA, 1,  1,  1, 4,  4]
//
// Layout:
//
//	na/        — the nullable cell (na.Value) and missing-value policies for
//	             raw float64 vectors, including R's NA_real_ bit pattern
//	fill/      — LOCF itself: copy, in-place, stats, raw float64s, and a
//	             parallel segmented scan that matches the sequential result
//	builder/   — deterministic gapped fixtures for tests, benchmarks, demos
//	codec/     — JSON, CSV, XLSX and raw binary adapters
//	cmd/locf/  — the `fill` file tool and the `serve` HTTP service
//	examples/  — a sensor gap-fill walkthrough
//
// Quick start:
//
//	out := fill.LOCF([]na.Value{na.Missing(), na.Of(1), na.Missing()})
//	// out == [NA 1 1]
//
//	go get github.com/katalvlaran/locf
package locf
