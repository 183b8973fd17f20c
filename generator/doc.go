// Package generator implements the three path-generation algorithms: Edge
// (GE), Filter (GF), and CPC (GC). Each is a value implementing Generator;
// they share testpath's primitives via composition, not inheritance — one
// file per algorithm, over a shared free-function surface on the data
// model.
package generator
