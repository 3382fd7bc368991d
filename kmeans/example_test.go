// Package kmeans_test provides runnable, deterministic examples for the
// kmeans package. Each example prints with a stable // Output: block.
//
// Contents:
//  1. ExampleHartiganWong   (refine given centroids on a 1-D line)
//  2. ExampleCluster        (k-means++ seeding through the matrix front-end)
//  3. ExampleReinitializeThen (repair an empty cluster, then refine)
package kmeans_test

import (
	"fmt"

	"github.com/katalvlaran/kmeans/kmeans"
	"github.com/katalvlaran/kmeans/matrix"
)

// ExampleHartiganWong refines two poorly placed centroids. Observation 1 is
// transferred to the first cluster during the optimal-transfer stage.
func ExampleHartiganWong() {
	var (
		data     = []float64{0, 1, 10, 11, 12} // ndim=1, nobs=5
		centers  = []float64{0, 1}             // ndim=1, k=2
		clusters = make([]int, len(data))
		hw       kmeans.HartiganWong
	)
	det, err := hw.Run(1, len(data), data, 2, centers, clusters)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("status:", det.Status)
	fmt.Println("clusters:", clusters)
	fmt.Println("sizes:", det.Sizes)
	fmt.Printf("centers: %.2f\n", centers)
	fmt.Printf("wcss: %.2f\n", det.TotalWithinss())
	// Output:
	// status: converged
	// clusters: [0 0 1 1 1]
	// sizes: [2 3]
	// centers: [0.50 11.00]
	// wcss: 2.50
}

// ExampleCluster partitions the rows of a matrix with the default pipeline
// (k-means++ seeding followed by Hartigan–Wong).
func ExampleCluster() {
	obs, err := matrix.FromRows([][]float64{
		{0, 0}, {0.5, 0}, {0, 0.5}, {0.5, 0.5},
		{100, 0}, {100.5, 0}, {100, 0.5}, {100.5, 0.5},
		{0, 100}, {0.5, 100}, {0, 100.5}, {0.5, 100.5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := kmeans.DefaultOptions()
	opts.Seed = 7
	res, err := kmeans.Cluster(obs, 3, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("status:", res.Status)
	fmt.Println("sizes:", res.Sizes)
	fmt.Printf("wcss: %.2f\n", res.TotalWithinss())
	// Output:
	// status: converged
	// sizes: [4 4 4]
	// wcss: 1.50
}

// ExampleReinitializeThen reseeds a cluster that attracted no observation
// and refines the repaired centroid set.
func ExampleReinitializeThen() {
	var (
		data = []float64{ // six 2-D observations, column-major
			1, 1, 1.5, 2, 2, 1,
			8, 8, 9, 8.5, 8.5, 9.5,
		}
		centers  = []float64{1, 1, 9, 9, 100, 100}
		clusters = make([]int, 6)
		hw       kmeans.HartiganWong
	)
	before, err := hw.Run(2, 6, data, 3, centers, clusters)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("empty before:", before.EmptyClusters().ToArray())

	alg := kmeans.ReinitializeThen(kmeans.NewReinitializer(42), &kmeans.HartiganWong{})
	after, err := alg.Run(2, 6, data, 3, centers, clusters)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("empty after:", after.EmptyClusters().ToArray())
	fmt.Println("improved:", after.TotalWithinss() < before.TotalWithinss())
	// Output:
	// empty before: [2]
	// empty after: []
	// improved: true
}
