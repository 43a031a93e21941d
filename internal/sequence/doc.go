// Package sequence builds the instrument run order: leading blanks, then
// periodic control blocks (blank/standard injections drawn from the reserved
// slots) each followed by a batch of randomly ordered samples.
//
// Control labels come from a pure Label function driven by two counters, one
// per control kind. Keep this package free of I/O; exporters live in writers.
package sequence
