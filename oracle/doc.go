// Package oracle provides a brute-force ground-truth shortest-path
// search used only by tests and benchmarks to check the hierarchical
// engine's approximation bound and soundness properties. It is
// deliberately a different algorithm (array-scan Dijkstra, no binary
// heap) from the production grid and graph packages, so it cannot share
// a bug with the code it verifies.
package oracle
