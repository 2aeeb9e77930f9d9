// Package server exposes the LOCF transformer over HTTP.
//
// Routes:
//
//	POST /v1/locf   {"values":[1,null,3]} → {"values":[1,1,3],"stats":{...}}
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus exposition
//
// The server only adapts: it decodes and validates the request, picks the
// sequential or the parallel pass, and records metrics. All imputation
// semantics live in package fill.
package server
