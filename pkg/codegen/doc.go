// Package codegen emits the compiled catalog as Go source: a declarations
// artifact exposing the runtime API surface and an implementation artifact
// carrying the key universe and the per-locale tables.
//
// Output is gofmt-formatted and byte-for-byte deterministic for identical
// input; files on disk are only rewritten when their content changes, so
// downstream build steps see stable timestamps.
package codegen
