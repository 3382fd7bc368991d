// Package kmeans partitions n observations in d dimensions into k clusters
// by minimising the within-cluster sum of squared Euclidean distances (WCSS).
//
// 🚀 What is k-means?
//
//	Given points x₁…xₙ and a cluster count k, find centroids c₁…c_k and an
//	assignment of every point to one centroid so that Σ‖xᵢ − c_{a(i)}‖² is
//	as small as possible. Every centroid is the mean of its members.
//
// ✨ Key features:
//   - HartiganWong: the transfer algorithm of Algorithm AS 136 (1979) with
//     optimal-transfer and quick-transfer stages and live-set pruning.
//   - Lloyd: classic batch assign/recompute iteration.
//   - Reinitializer: reseeds empty clusters with squared-distance weighted
//     donors, then hands over to a refiner (ReinitializeThen).
//   - Kmeans: k-means++ or random seeding plus refinement, with optional
//     concurrent multi-start (Options.Starts).
//   - One contract (Algorithm.Run) on flat column-major buffers, and a
//     matrix front-end (Cluster, Refine, Predict) on *matrix.Dense.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kmeans/kmeans"
//
//	opts := kmeans.DefaultOptions() // k-means++ → Hartigan–Wong
//	opts.Seed = 42
//	alg, err := kmeans.New(opts)
//
//	// data: ndim×nobs column-major, centers: ndim×k, clusters: nobs
//	det, err := alg.Run(ndim, nobs, data, k, centers, clusters)
//
// Contract:
//   - data is borrowed and never modified; only centers and clusters are written.
//   - nobs == 0 succeeds with zeroed Details; k ≥ nobs makes every
//     observation a singleton and leaves the surplus centroid columns alone.
//   - Data conditions (non-convergence, empty clusters) are reported through
//     Details.Status; errors are reserved for invalid shapes and options.
//   - Algorithm values are not safe for concurrent use.
//
// Performance:
//
//   - Time:   O(iter · n · k · d)
//   - Memory: O(n + k) scratch on top of the caller's buffers
//
// See example_test.go for runnable walkthroughs.
package kmeans
