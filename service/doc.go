// Package service provides the end-to-end operations behind the emlmerge CLI:
// planning the timestamp order of exported emails and merging them into one
// document.
//
// This package is intended for embedding emlmerge into other programs
// without shelling out to the CLI.
package service
