// SPDX-License-Identifier: MIT

// Package builder generates small synthetic observation sets for exercising
// the clustering engine: Gaussian blobs with ground-truth labels, uniform
// noise in a box, a noisy ring and a deterministic lattice.
//
// 🚀 Usage
//
//	obs, labels, err := builder.Blobs(50, [][]float64{{0, 0}, {10, 10}}, 42,
//		builder.WithSpread(0.5), builder.WithShuffle())
//	if err != nil { /* handle */ }
//	res, err := kmeans.Cluster(obs, 2, kmeans.DefaultOptions())
//
// ⚙️ Contract
//
//   - Every generator returns an n×d *matrix.Dense, one observation per row.
//   - Results depend only on the arguments and options; the seed argument
//     (or WithSeed/WithRand) fixes every draw.
//   - Option constructors panic on meaningless values (negative spread,
//     empty box); generators return sentinel errors and never panic.
package builder
