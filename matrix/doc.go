// Package matrix offers a small, bounds-checked dense matrix container used
// as the friendly front door to the kmeans engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set/Row accessors.
//   - FromSlice: zero-copy wrapping of caller-owned buffers.
//   - Validators for shape and finite-value policy.
//
// Observations are stored one per row. Because the buffer is row-major, an
// nobs×ndim Dense is byte-for-byte the ndim×nobs column-major layout the
// clustering kernels consume, so no transposition is ever needed.
package matrix
