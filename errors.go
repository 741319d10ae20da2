package hpapath

import "errors"

// Sentinel errors returned by PathCache construction and configuration.
// As in packages grid and graph, "no path" query outcomes are represented
// by a false/zero return rather than an error — see FindPath, FindPaths,
// and FindClosestGoal.
var (
	// ErrInvalidDimensions indicates New was called with a non-positive
	// width or height.
	ErrInvalidDimensions = errors.New("hpapath: width and height must both be positive")

	// ErrInvalidChunkSize indicates a Config with a non-positive ChunkSize.
	ErrInvalidChunkSize = errors.New("hpapath: ChunkSize must be positive")
)
