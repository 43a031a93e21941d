// Package writers turns a built sequence into files the instrument software
// imports, plus human-readable views.
//
// Design:
//   • Writers own all presentation knowledge (LC/MS CSV, JSON, tray map).
//   • sequence and trays stay domain-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
