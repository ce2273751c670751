// Package engine implements the normalization and validation pipeline for
// delimited extracts from government record systems.
//
// The engine is parameterized entirely by data: a reference schema, an alias
// table, a column-type mapping, and per-field categorical specs (see Spec).
// Agency-specific behavior lives in configuration, not code. The pipeline is
// single-threaded and synchronous per file; independent Processors can run in
// parallel because they share no mutable state.
package engine
