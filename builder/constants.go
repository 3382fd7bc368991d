// Package builder defines shared constants used by the dataset generators,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBlobs is the canonical name for the Blobs generator.
	MethodBlobs = "Blobs"
	// MethodUniform is the canonical name for the Uniform generator.
	MethodUniform = "Uniform"
	// MethodRing is the canonical name for the Ring generator.
	MethodRing = "Ring"
	// MethodGrid is the canonical name for the Grid generator.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPoints is the smallest meaningful number of generated observations
// (overall, or per cluster for Blobs).
const MinPoints = 1

// MinDim is the smallest meaningful dimensionality.
const MinDim = 1

// MinRingPoints is the smallest ring that still spans a closed polygon.
const MinRingPoints = 3
