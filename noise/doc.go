// Package noise supplies the coherent noise used to carve the point field and
// to distort angular distances in the proximity graph.
//
// Field is the collaborator interface; NewSimplex returns a seeded OpenSimplex
// field whose values lie approximately in [-1, 1]. Func and Constant adapt
// plain functions and fixed values, which keeps tests independent of the
// simplex lattice.
//
// Determinism: two fields built with the same seed return identical values
// for identical inputs. Evaluation is pure and safe for concurrent use.
package noise
