// Package gridgen generates deterministic, seeded test grids for
// exercising the hpapath engine: uniform open floors, mazes carved by a
// randomized recursive backtracker, and room-and-corridor layouts with a
// swamp overlay. Every generator is a pure function of its seed, so a
// test or benchmark can reproduce the exact same grid across runs.
package gridgen
