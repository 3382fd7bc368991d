// Package kmeans is the root of a small, dependable k-means clustering
// toolkit: the Hartigan–Wong transfer algorithm, Lloyd iteration, seeded
// initialisation and empty-cluster repair behind one Run contract.
//
// 🚀 What is in the box?
//
//	• Refiners: Hartigan–Wong (Algorithm AS 136) and batch Lloyd
//	• Seeding: k-means++ and uniform random, with concurrent multi-start
//	• Repair: squared-distance weighted reseeding of empty clusters
//	• Front-end: matrix.Dense in, centroids + labels + statistics out
//	• Observability: Prometheus metrics and slog logging as a decorator
//
// ✨ Why this layout?
//
//   - Flat column-major buffers at the core: no copies, no hidden allocation
//     beyond O(n + k) scratch per run.
//   - Deterministic: every stochastic step draws from an explicit seed.
//   - Errors only for programming mistakes; data conditions travel in Details.
//
// Subpackages:
//
//	kmeans/     - Algorithm contract, HartiganWong, Lloyd, Reinitializer, Kmeans driver
//	matrix/     - Dense row-major container and validators (rows = observations)
//	instrument/ - Prometheus Recorder and slog decorator for any Algorithm
//	builder/    - seeded synthetic datasets (blobs, uniform box, ring, grid)
//	examples/   - runnable programs
//
//	go get github.com/katalvlaran/kmeans
package kmeans
