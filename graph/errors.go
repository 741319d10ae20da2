package graph

import "errors"

// Sentinel errors returned by NodeList construction and lookup. As in
// package grid, "no path" outcomes from AStar/Dijkstra are represented by
// a false/empty return rather than an error.
var (
	// ErrNodeNotFound indicates a lookup by id or position found nothing.
	ErrNodeNotFound = errors.New("graph: node not found")
)
