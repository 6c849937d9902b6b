// Package serve implements the aurochs preview server.
//
// The server renders tree documents from a directory on every request:
// GET / serves index.yaml and GET /{page} serves {page}.yaml. Render counts
// and latencies are exported as Prometheus metrics on /metrics and every
// render runs inside an OpenTelemetry span.
//
// With live reload enabled, the directory is polled for changes and
// connected browsers are told to reload over a WebSocket at
// /_aurochs/reload.
package serve
