// Package trays models the autosampler deck: the ordered slot universe
// (tray, then row, then column), the contiguous run of slots holding the
// numbered samples, and the two slots reserved for blank and standard vials.
//
// trays is domain-only. It never imports sequence, writers, cli, or app.
package trays
